package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/cmdtypes"
	"github.com/paulrobinson/quarkus/internal/cmdutil"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/project"
)

// planCodestart is one selected codestart in the plan output.
type planCodestart struct {
	Name     string `json:"name"`
	Ref      string `json:"ref"`
	Category string `json:"category"`
}

// plan is the resolved generation plan.
type plan struct {
	Language   string          `json:"language"`
	Codestarts []planCodestart `json:"codestarts"`
	Data       map[string]any  `json:"data"`
}

func newPlan(p *project.Project) plan {
	out := plan{Language: p.Language, Data: p.Data()}
	for _, cs := range p.Codestarts {
		out.Codestarts = append(out.Codestarts, planCodestart{
			Name:     cs.Name(),
			Ref:      cs.Ref(),
			Category: cs.Category().String(),
		})
	}
	return out
}

// NewPlanCmd creates the plan command.
func NewPlanCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.SelectionFlags
	var format string

	c := &cobra.Command{
		Use:   "plan",
		Short: "Show the codestarts and data a project would use",
		Long: `Resolve codestarts like create does and print the result without
writing any file: the selected codestarts in processing order, the language,
and the data templates are rendered against.

Examples:
  # Plan the default project
  codestart plan

  # Plan a Gradle project as JSON
  codestart plan --buildtool gradle -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
			}

			p, err := resolveProject(cfg, &sf)
			if err != nil {
				return err
			}

			data, err := output.Marshal(newPlan(p), f)
			if err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
			}
			_, err = c.OutOrStdout().Write(data)
			return err
		},
	}

	sf.AddTo(c)
	c.Flags().StringVarP(&format, "output", "o", "yaml", "Output format: yaml, json")

	return c
}
