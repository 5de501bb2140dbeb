package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the lexdist version, the Go runtime it was built with, and the VCS revision when available.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "lexdist v%s (%s)\n", version, runtime.Version())
			if bi, ok := debug.ReadBuildInfo(); ok {
				for _, s := range bi.Settings {
					if s.Key == "vcs.revision" && s.Value != "" {
						_, _ = fmt.Fprintf(out, "revision %s\n", s.Value)

						break
					}
				}
			}
		},
	}
}
