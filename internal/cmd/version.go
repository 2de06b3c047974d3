package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show codestart CLI version information.

Displays:
  - CLI version, commit, and build date
  - CUE SDK version used to validate codestart specs`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
