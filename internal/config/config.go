// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty"`
}

// Config represents the codestart CLI configuration.
// Loaded from ~/.codestart/config.yaml.
type Config struct {
	// Catalogs are extra catalog directories, loaded after the bundled
	// catalog. A codestart in a later catalog replaces one of the same name.
	// Env: CODESTART_CATALOGS (comma separated)
	Catalogs []string `mapstructure:"catalogs" json:"catalogs,omitempty"`

	// DefaultExample is the example codestart added when examples are
	// requested but none is selected.
	// Env: CODESTART_DEFAULT_EXAMPLE, Default: commandmode-example
	DefaultExample string `mapstructure:"defaultExample" json:"defaultExample,omitempty"`

	// Data is default project data applied to every generated project,
	// before --data flags. Dotted keys are expanded.
	Data map[string]any `mapstructure:"data" json:"data,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		DefaultExample: "commandmode-example",
		Data:           map[string]any{},
	}
}

// WithDefaults returns a copy of c with unset fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	defaults := DefaultConfig()
	if out.DefaultExample == "" {
		out.DefaultExample = defaults.DefaultExample
	}
	if out.Data == nil {
		out.Data = defaults.Data
	}
	return &out
}
