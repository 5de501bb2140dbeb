package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/lexdist/asjp"
	"github.com/katalvlaran/lexdist/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the languages in the database",
		Long:  `Print every language in the database with its display name and the number of concepts it has word forms for.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			reg, err := asjp.Open(cfg.Database)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ISO", "NAME", "CONCEPTS"})
			for _, id := range reg.Identifiers() {
				wl, err := reg.Get(id)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{wl.ID(), wl.Name(), wl.Len()})
			}
			render(t, cfg.Format)

			return nil
		},
	}
}
