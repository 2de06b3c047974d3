package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/catalog"
	"github.com/paulrobinson/quarkus/internal/cmdtypes"
	"github.com/paulrobinson/quarkus/internal/cmdutil"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/project"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.SelectionFlags

	c := &cobra.Command{
		Use:   "create [dir]",
		Short: "Generate a new project",
		Long: `Generate a new project into a directory.

The directory must not exist or be empty. Codestarts are selected from the
requested codestarts and extensions; every category that is not requested
uses the catalog fallback.

Arguments:
  dir    Target directory (default: code-with-quarkus)

Examples:
  # Generate the default project
  codestart create

  # Kotlin project with Gradle and the RESTEasy example
  codestart create demo -x io.quarkus:quarkus-kotlin --buildtool gradle \
    -x io.quarkus:quarkus-resteasy --examples

  # Override project coordinates
  codestart create demo -D project.group-id=com.example -D project.version=1.0.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, cfg, &sf)
		},
	}

	sf.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, sf *cmdutil.SelectionFlags) error {
	targetDir := cmdutil.ResolveTargetDir(args)

	p, err := resolveProject(cfg, sf)
	if err != nil {
		return err
	}

	files, err := project.Generate(p, targetDir)
	if err != nil {
		cmdutil.PrintError("generation failed", err)
		return cmdtypes.NewExitError(err, true)
	}

	out := c.OutOrStdout()
	if f, ok := out.(*os.File); ok && !output.IsTTY(f) {
		// Plain listing for pipes and scripts.
		fmt.Fprintln(out, strings.Join(files, "\n"))
		return nil
	}

	fmt.Fprint(out, output.RenderFileTree(filepath.Base(filepath.Clean(targetDir)), files))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Generated %s project in %s",
		p.Language, output.StyleNoun.Render(targetDir))))
	return nil
}

// resolveProject loads the catalogs and resolves the codestarts for the
// selection flags. Failures are printed and returned as an ExitError.
func resolveProject(cfg *cmdtypes.GlobalConfig, sf *cmdutil.SelectionFlags) (*project.Project, error) {
	cat, err := loadCatalog(cfg, sf.Catalogs)
	if err != nil {
		cmdutil.PrintError("loading catalog failed", err)
		return nil, cmdtypes.NewExitError(err, true)
	}

	var defaults project.Options
	if cfg.Config != nil {
		defaults.DefaultExample = cfg.Config.DefaultExample
	}

	input, err := sf.BuildInput(cfg.Config)
	if err != nil {
		cmdutil.PrintError("invalid input", err)
		return nil, cmdtypes.NewExitError(err, true)
	}

	p, err := project.Prepare(input, cat, defaults)
	if err != nil {
		cmdutil.PrintError("selection failed", err)
		return nil, cmdtypes.NewExitError(err, true)
	}
	return p, nil
}

// loadCatalog loads the bundled catalog plus the configured and flag
// catalog directories, in that order.
func loadCatalog(cfg *cmdtypes.GlobalConfig, flagDirs []string) (*catalog.Catalog, error) {
	var dirs []string
	if cfg.Config != nil {
		dirs = append(dirs, cfg.Config.Catalogs...)
	}
	dirs = append(dirs, flagDirs...)
	return cmdutil.LoadCatalog(dirs...)
}
