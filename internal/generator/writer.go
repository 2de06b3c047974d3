package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/projectdata"
)

// Filename markers recognised by the writers.
const (
	AppendMarker      = ".append"
	PomMergeMarker    = ".pom-merge"
	ConfigMergeMarker = ".config-merge"
)

// Config formats a config-merge target can be written as.
const (
	ConfigYAML       = "config-yaml"
	ConfigProperties = "config-properties"
)

// FileWriter writes text to a target path. Stateful writers buffer in
// Write and touch the disk only in Close.
type FileWriter interface {
	Matches(name string) bool
	CleanFileName(name string) string
	// Write handles content destined for target and returns the path that
	// will eventually hold it.
	Write(content, target string, data map[string]any) (string, error)
	Close() error
}

// markerWriter implements Matches and CleanFileName for a marker.
type markerWriter struct {
	marker string
}

func (w markerWriter) Matches(name string) bool { return strings.Contains(name, w.marker) }

func (w markerWriter) CleanFileName(name string) string {
	return strings.ReplaceAll(name, w.marker, "")
}

// overwriteWriter writes each piece straight to disk.
type overwriteWriter struct{}

func (overwriteWriter) Matches(string) bool { return true }

func (overwriteWriter) CleanFileName(name string) string { return name }

func (overwriteWriter) Write(content, target string, _ map[string]any) (string, error) {
	return target, writeFile(target, []byte(content), 0o644)
}

func (overwriteWriter) Close() error { return nil }

// appendWriter concatenates every piece for a target, in arrival order,
// separated by a newline.
type appendWriter struct {
	markerWriter
	order []string
	files map[string]*strings.Builder
}

func newAppendWriter() *appendWriter {
	return &appendWriter{
		markerWriter: markerWriter{marker: AppendMarker},
		files:        map[string]*strings.Builder{},
	}
}

func (w *appendWriter) Write(content, target string, _ map[string]any) (string, error) {
	b, ok := w.files[target]
	if !ok {
		b = &strings.Builder{}
		w.files[target] = b
		w.order = append(w.order, target)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(content)
	return target, nil
}

func (w *appendWriter) Close() error {
	for _, target := range w.order {
		output.Debug("flushing appended file", "target", target)
		if err := writeFile(target, []byte(w.files[target].String()), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// configMergeWriter deep-merges YAML pieces and writes them as YAML or
// properties depending on the resolved config codestart.
type configMergeWriter struct {
	markerWriter
	order   []string
	configs map[string]map[string]any
}

func newConfigMergeWriter() *configMergeWriter {
	return &configMergeWriter{
		markerWriter: markerWriter{marker: ConfigMergeMarker},
		configs:      map[string]map[string]any{},
	}
}

func (w *configMergeWriter) Write(content, target string, data map[string]any) (string, error) {
	ext := filepath.Ext(target)
	if ext != ".yml" && ext != ".yaml" {
		return "", oerrors.NewConfigurationError(
			"config-merge files must target a .yml or .yaml file", target, "", "")
	}

	typed, err := typedConfigPath(target, ext, data)
	if err != nil {
		return "", err
	}

	config, ok := w.configs[typed]
	if !ok {
		config = map[string]any{}
		w.configs[typed] = config
		w.order = append(w.order, typed)
	}

	if strings.TrimSpace(content) == "" {
		return typed, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return "", oerrors.Wrapf(oerrors.ErrConfiguration, err, "parsing config for %s", target)
	}
	maputil.DeepMerge(config, maputil.NormalizeMap(doc))
	return typed, nil
}

func typedConfigPath(target, ext string, data map[string]any) (string, error) {
	configType, ok := maputil.GetString(data, projectdata.ConfigNamePath)
	if !ok {
		return "", oerrors.NewConfigurationError("config type is required to merge config files",
			target, projectdata.ConfigNamePath, "select a config codestart")
	}
	switch configType {
	case ConfigYAML:
		return target, nil
	case ConfigProperties:
		return strings.TrimSuffix(target, ext) + ".properties", nil
	default:
		return "", oerrors.NewConfigurationError(
			fmt.Sprintf("unsupported config type %q", configType),
			target, projectdata.ConfigNamePath,
			"use "+ConfigYAML+" or "+ConfigProperties)
	}
}

func (w *configMergeWriter) Close() error {
	for _, target := range w.order {
		if _, err := os.Stat(target); err == nil {
			return oerrors.NewPreconditionError("merged config file already exists", target,
				"write config files only through .config-merge")
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", target, err)
		}

		var content []byte
		var err error
		if filepath.Ext(target) == ".properties" {
			content = marshalProperties(w.configs[target])
		} else {
			content, err = marshalYAML(w.configs[target])
		}
		if err != nil {
			return fmt.Errorf("encoding %s: %w", target, err)
		}

		output.Debug("flushing merged config", "target", target)
		if err := writeFile(target, content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func marshalYAML(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalProperties(doc map[string]any) []byte {
	flat := maputil.Flatten(doc)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteString("=")
		buf.WriteString(flat[k])
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

func writeFile(target string, content []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
