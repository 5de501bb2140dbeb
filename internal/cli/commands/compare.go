package commands

import (
	"fmt"

	"github.com/katalvlaran/lexdist/asjp"
	"github.com/katalvlaran/lexdist/internal/cli/config"
	"github.com/katalvlaran/lexdist/nld"
	"github.com/spf13/cobra"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare LANG1 LANG2",
		Short: "Mean normalized Levenshtein distance between two languages",
		Long: `Compute the mean normalized Levenshtein distance between two languages,
identified by their codes in the ASJP database (e.g. swe, eng).

The score is the average, over all concepts both languages have word forms
for, of the vowel-weighted edit distance between forms normalized by the
longer form's length. 0 means identical vocabularies.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			reg, err := asjp.Open(cfg.Database)
			if err != nil {
				return err
			}
			a, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			b, err := reg.Get(args[1])
			if err != nil {
				return err
			}

			opts := nld.Options{VowelWeight: cfg.VowelWeight}
			d, err := nld.LanguageDistance(a, b, &opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.4f\n", a.ID(), b.ID(), d)

			return nil
		},
	}
}
