package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/lexdist/asjp"
	"github.com/katalvlaran/lexdist/internal/cli/config"
	"github.com/katalvlaran/lexdist/nld"
	"github.com/katalvlaran/lexdist/wordlist"
	"github.com/spf13/cobra"
)

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix [LANG...]",
		Short: "Pairwise distance matrix for the given languages",
		Long: `Print the symmetric matrix of mean normalized Levenshtein distances for
the given language codes, or for every language in the database when no
codes are given. Pairs are computed in parallel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			reg, err := asjp.Open(cfg.Database)
			if err != nil {
				return err
			}

			ids := args
			if len(ids) == 0 {
				ids = reg.Identifiers()
			}
			lists := make([]*wordlist.WordList, len(ids))
			for i, id := range ids {
				if lists[i], err = reg.Get(id); err != nil {
					return err
				}
			}

			opts := nld.Options{VowelWeight: cfg.VowelWeight}
			m, err := nld.Matrix(cmd.Context(), lists, &opts)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			head := table.Row{""}
			for _, wl := range lists {
				head = append(head, wl.ID())
			}
			t.AppendHeader(head)
			for i, wl := range lists {
				row := table.Row{wl.ID()}
				for j := range lists {
					row = append(row, fmt.Sprintf("%.4f", m[i][j]))
				}
				t.AppendRow(row)
			}
			render(t, cfg.Format)

			return nil
		},
	}
}
