// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paulrobinson/quarkus/internal/cmdtypes"
	"github.com/paulrobinson/quarkus/internal/config"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/version"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the codestart CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "codestart",
		Short: "Generate projects from codestarts",
		Long: `codestart generates new projects by composing codestarts: reusable
template bundles for the project layout, language, build tool, configuration
format, tooling and examples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: CODESTART_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd(cfg))
	rootCmd.AddCommand(NewPlanCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath, source, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	loaded, err := config.NewLoader().LoadWithDefaults(configPath)
	if err != nil {
		return cmdtypes.NewExitError(err, false)
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"version", version.Version,
		"config", configPath,
		"source", source,
		"catalogs", loaded.Catalogs,
	)
	return nil
}
