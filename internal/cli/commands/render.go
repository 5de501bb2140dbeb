// Package commands implements the lexdist subcommands.
package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/lexdist/internal/cli/config"
)

// newTable returns a table writer mirrored to w.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	return t
}

// render draws t in the configured format.
func render(t table.Writer, format string) {
	switch format {
	case config.FormatMarkdown:
		t.RenderMarkdown()
	case config.FormatCSV:
		t.RenderCSV()
	default:
		t.Render()
	}
}
