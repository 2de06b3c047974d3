package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

// Environment variable prefix for codestart configuration.
const envPrefix = "CODESTART"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("catalogs", "CODESTART_CATALOGS")
	_ = v.BindEnv("defaultExample", "CODESTART_DEFAULT_EXAMPLE")
	_ = v.BindEnv("log.timestamps", "CODESTART_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.Wrapf(oerrors.ErrConfiguration, err, "reading config file %s", expandedPath)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrConfiguration, err, "unmarshaling config")
	}

	for i, dir := range cfg.Catalogs {
		expanded, err := ExpandPath(dir)
		if err != nil {
			return nil, fmt.Errorf("expanding catalog path %s: %w", dir, err)
		}
		cfg.Catalogs[i] = expanded
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the file the loader read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
