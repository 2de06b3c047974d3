// Package codestart models a codestart: a named bundle of template files and
// declarative data that contributes one slice of a generated project.
package codestart

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

// BaseLanguage is the reserved language layer shared by every language.
const BaseLanguage = "base"

// LanguageSpec is one language layer of a codestart.
type LanguageSpec struct {
	Data             map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
	SharedData       map[string]any `yaml:"shared-data,omitempty" json:"sharedData,omitempty"`
	Dependencies     []Dependency   `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	TestDependencies []Dependency   `yaml:"test-dependencies,omitempty" json:"testDependencies,omitempty"`
}

// Spec is the declarative content of a codestart.yml file.
type Spec struct {
	Name        string                  `yaml:"name" json:"name"`
	Ref         string                  `yaml:"ref,omitempty" json:"ref,omitempty"`
	Category    Category                `yaml:"category,omitempty" json:"category,omitempty"`
	Fallback    bool                    `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Preselected bool                    `yaml:"preselected,omitempty" json:"preselected,omitempty"`
	Example     bool                    `yaml:"example,omitempty" json:"example,omitempty"`
	Languages   map[string]LanguageSpec `yaml:"spec,omitempty" json:"spec,omitempty"`
}

// UnmarshalYAML accepts "type" as an alias of "category" and parses the
// category case-insensitively.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	type plain Spec
	var raw struct {
		plain `yaml:",inline"`
		Type  string `yaml:"type,omitempty"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	name := string(raw.Category)
	if name == "" {
		name = raw.Type
	}
	category, ok := ParseCategory(name)
	if !ok {
		return oerrors.Wrap(oerrors.ErrConfiguration,
			fmt.Sprintf("line %d: unknown codestart category %q", node.Line, name))
	}

	*s = Spec(raw.plain)
	s.Category = category
	return nil
}

// Location identifies where a codestart's file tree lives. Dir is a slash
// separated path inside FS.
type Location struct {
	FS  fs.FS
	Dir string
}

// Sub returns the location of a child directory.
func (l Location) Sub(name string) Location {
	return Location{FS: l.FS, Dir: path.Join(l.Dir, name)}
}

// Codestart is a loaded codestart. It is not modified after loading.
type Codestart struct {
	Location Location
	Spec     Spec
}

// New builds a codestart, applying spec defaults.
func New(loc Location, spec Spec) *Codestart {
	if spec.Ref == "" {
		spec.Ref = spec.Name
	}
	if spec.Category == "" {
		spec.Category = CategoryExample
	}
	if spec.Languages == nil {
		spec.Languages = map[string]LanguageSpec{}
	}
	return &Codestart{Location: loc, Spec: spec}
}

func (c *Codestart) Name() string { return c.Spec.Name }
func (c *Codestart) Ref() string { return c.Spec.Ref }
func (c *Codestart) Category() Category { return c.Spec.Category }
func (c *Codestart) IsFallback() bool { return c.Spec.Fallback }
func (c *Codestart) IsPreselected() bool { return c.Spec.Preselected }
func (c *Codestart) IsBase() bool { return c.Spec.Category.IsBase() }
func (c *Codestart) IsExample() bool { return c.Spec.Category == CategoryExample }
func (c *Codestart) Languages() []string { return c.languageNames() }
func (c *Codestart) String() string { return c.Spec.Name }

// Layer returns the language layer, or an empty layer when absent.
func (c *Codestart) Layer(language string) LanguageSpec {
	return c.Spec.Languages[language]
}

// LocalData is the rendering-local data for a language: base layer data
// overridden by the language layer.
func (c *Codestart) LocalData(language string) map[string]any {
	return maputil.Merge(c.Layer(BaseLanguage).Data, c.Layer(language).Data)
}

// SharedData is the project-wide data for a language: base layer shared data
// overridden by the language layer.
func (c *Codestart) SharedData(language string) map[string]any {
	return maputil.Merge(c.Layer(BaseLanguage).SharedData, c.Layer(language).SharedData)
}

// Dependencies returns base then language-specific dependencies.
func (c *Codestart) Dependencies(language string) []Dependency {
	out := append([]Dependency{}, c.Layer(BaseLanguage).Dependencies...)
	if language != BaseLanguage {
		out = append(out, c.Layer(language).Dependencies...)
	}
	return out
}

// TestDependencies returns base then language-specific test dependencies.
func (c *Codestart) TestDependencies(language string) []Dependency {
	out := append([]Dependency{}, c.Layer(BaseLanguage).TestDependencies...)
	if language != BaseLanguage {
		out = append(out, c.Layer(language).TestDependencies...)
	}
	return out
}

// SupportsLanguage reports whether the codestart declares a layer for the
// language or has a language-specific file tree.
func (c *Codestart) SupportsLanguage(language string) bool {
	if _, ok := c.Spec.Languages[language]; ok {
		return true
	}
	if c.Location.FS == nil {
		return false
	}
	info, err := fs.Stat(c.Location.FS, path.Join(c.Location.Dir, language))
	return err == nil && info.IsDir()
}

func (c *Codestart) languageNames() []string {
	names := make([]string, 0, len(c.Spec.Languages))
	for name := range c.Spec.Languages {
		if name != BaseLanguage {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
