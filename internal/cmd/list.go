package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/cmdtypes"
	"github.com/paulrobinson/quarkus/internal/cmdutil"
	"github.com/paulrobinson/quarkus/internal/codestart"
	"github.com/paulrobinson/quarkus/internal/output"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var catalogs []string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the available codestarts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cfg, catalogs)
			if err != nil {
				cmdutil.PrintError("loading catalog failed", err)
				return cmdtypes.NewExitError(err, true)
			}

			rows := make([]output.CodestartRow, 0, len(cat.Codestarts()))
			for _, cs := range cat.Codestarts() {
				rows = append(rows, codestartRow(cs))
			}
			fmt.Fprintln(c.OutOrStdout(), output.RenderCodestartTable(rows))
			return nil
		},
	}

	c.Flags().StringArrayVar(&catalogs, "catalog", nil, "Additional catalog directory (can be repeated)")

	return c
}

func codestartRow(cs *codestart.Codestart) output.CodestartRow {
	var flags []string
	if cs.IsFallback() {
		flags = append(flags, "fallback")
	}
	if cs.IsPreselected() {
		flags = append(flags, "preselected")
	}
	return output.CodestartRow{
		Name:      cs.Name(),
		Ref:       cs.Ref(),
		Category:  output.CategoryStyle(cs.Category().String()).Render(cs.Category().String()),
		Languages: cs.Languages(),
		Flags:     flags,
	}
}
