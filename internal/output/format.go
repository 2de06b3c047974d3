package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"sigs.k8s.io/yaml"
)

// Format specifies a structured output format.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f Format) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. Empty means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the valid output format strings.
func ValidFormats() []string {
	return []string{"yaml", "json"}
}

// Marshal encodes v in format f. Field names follow json tags for both
// formats.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
