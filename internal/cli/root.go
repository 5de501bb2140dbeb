// Package cli provides the command-line interface for lexdist.
package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lexdist/internal/cli/commands"
	"github.com/katalvlaran/lexdist/internal/cli/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lexdist",
		Short: "Lexical distance between languages from ASJP word lists",
		Long: `lexdist measures how lexically close languages are, using vowel-weighted
normalized Levenshtein distance over the phonetic word forms of the ASJP
database.

Point it at an ASJP tab-separated file (default: ./asjp.tab) and compare
language pairs, print full distance matrices, or list the loaded languages.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(config.NewContext(cmd.Context(), cfg))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lexdist.yaml)")
	rootCmd.PersistentFlags().StringP("database", "d", "", "path to the ASJP tab-separated database file")
	rootCmd.PersistentFlags().Float64("vowel-weight", config.DefaultVowelWeight, "substitution cost for differing vowel pairs")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (text|markdown|csv)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatText, config.FormatMarkdown, config.FormatCSV}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(commands.NewMatrixCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
