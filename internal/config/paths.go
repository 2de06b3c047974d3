package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for the codestart CLI.
type Paths struct {
	// ConfigFile is the path to the config file (~/.codestart/config.yaml).
	ConfigFile string

	// HomeDir is the codestart home directory (~/.codestart).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".codestart")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CODESTART_CONFIG env, (3) ~/.codestart/config.yaml.
func ResolveConfigPath(flagValue string) (string, ConfigSource, error) {
	if flagValue != "" {
		return flagValue, SourceFlag, nil
	}
	if envPath := os.Getenv("CODESTART_CONFIG"); envPath != "" {
		return envPath, SourceEnv, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", "", err
	}
	return paths.ConfigFile, SourceDefault, nil
}

// GetConfigFile returns the config file path.
// If CODESTART_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	path, _, err := ResolveConfigPath("")
	return path, err
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
