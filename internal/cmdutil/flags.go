// Package cmdutil provides shared command utilities for the create and plan
// commands. It centralizes flag groups, catalog loading, input assembly and
// error reporting.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/config"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
	"github.com/paulrobinson/quarkus/internal/project"
	"github.com/paulrobinson/quarkus/internal/projectdata"
)

// SelectionFlags holds flags common to commands that resolve a project
// (create, plan).
type SelectionFlags struct {
	Codestarts []string
	Extensions []string
	BuildTool  string
	Examples   bool
	Data       []string
	Catalogs   []string
}

// AddTo registers the selection flags on the given cobra command.
func (f *SelectionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.Codestarts, "codestart", "c", nil,
		"Codestart ref to include (can be repeated)")
	cmd.Flags().StringArrayVarP(&f.Extensions, "extension", "x", nil,
		"Extension as group:artifact[:version] (can be repeated)")
	cmd.Flags().StringVar(&f.BuildTool, "buildtool", "",
		"Build tool codestart (default: the catalog fallback)")
	cmd.Flags().BoolVar(&f.Examples, "examples", false,
		"Include example codestarts")
	cmd.Flags().StringArrayVarP(&f.Data, "data", "D", nil,
		"Project data as key=value, dotted keys allowed (can be repeated)")
	cmd.Flags().StringArrayVar(&f.Catalogs, "catalog", nil,
		"Additional catalog directory (can be repeated)")
}

// ParseData parses key=value pairs. Legacy flat keys such as
// project_groupId are converted to their dotted form.
func ParseData(pairs []string) (map[string]any, error) {
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, oerrors.NewConfigurationError(
				fmt.Sprintf("invalid data %q", pair), "", "--data", "use key=value, for example project.group-id=org.acme")
		}
		data[key] = value
	}
	return projectdata.ConvertLegacy(data), nil
}

// BuildInput assembles the generation input from flags and the default data
// of cfg. Flag data wins over config data, and --buildtool wins over both.
func (f *SelectionFlags) BuildInput(cfg *config.Config) (project.Input, error) {
	flagData, err := ParseData(f.Data)
	if err != nil {
		return project.Input{}, err
	}

	var defaults map[string]any
	if cfg != nil {
		defaults, err = maputil.Unflatten(maputil.NormalizeMap(cfg.Data))
		if err != nil {
			return project.Input{}, err
		}
	}
	overrides, err := maputil.Unflatten(flagData)
	if err != nil {
		return project.Input{}, err
	}

	builder := project.NewInputBuilder().
		AddCodestarts(f.Codestarts...).
		IncludeExamples(f.Examples).
		AddData(maputil.Merge(defaults, overrides))
	for _, ext := range f.Extensions {
		builder.AddExtension(ext)
	}
	if f.BuildTool != "" {
		builder.PutData(project.BuildToolNamePath, f.BuildTool)
	}
	return builder.Build()
}

// ResolveTargetDir returns the target directory from command args.
func ResolveTargetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "code-with-quarkus"
}
