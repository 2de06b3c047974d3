// Package catalog discovers and loads codestarts from a filesystem tree.
//
// A catalog is any directory tree containing codestart.yml (or
// codestart.yaml) files. The directory holding the file is the codestart's
// root; its base/ and <language>/ children hold the template files. An
// optional extensions.yml at the catalog root maps extension coordinates to
// the codestarts they enable.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
	"github.com/paulrobinson/quarkus/internal/output"
)

// ExtensionsFile is the name of the extension index at a catalog root.
const ExtensionsFile = "extensions.yml"

//go:embed all:bundled
var bundledFS embed.FS

// Catalog is an ordered set of codestarts plus the extension index.
type Catalog struct {
	codestarts []*codestart.Codestart
	extensions map[string][]string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{extensions: map[string][]string{}}
}

// Bundled loads the catalog embedded in the binary.
func Bundled() (*Catalog, error) {
	return Load(bundledFS, "bundled")
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError("catalog directory does not exist", dir,
				"check the catalogs setting or the --catalog flag")
		}
		return nil, fmt.Errorf("reading catalog %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewConfigurationError("catalog path is not a directory", dir, "", "")
	}
	return Load(os.DirFS(dir), ".")
}

// Load walks root inside fsys and loads every codestart found, in lexical
// path order.
func Load(fsys fs.FS, root string) (*Catalog, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	cat := New()
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", p, err)
		}
		if d.IsDir() {
			return nil
		}

		switch d.Name() {
		case "codestart.yml", "codestart.yaml":
			cs, err := loadCodestart(fsys, p, validator)
			if err != nil {
				return err
			}
			if existing, ok := cat.Find(cs.Name()); ok {
				return oerrors.NewConfigurationError(
					fmt.Sprintf("duplicate codestart name %q", cs.Name()),
					p, "name", "also defined in "+existing.Location.Dir)
			}
			output.Debug("loaded codestart", "name", cs.Name(), "category", cs.Category(), "dir", cs.Location.Dir)
			cat.codestarts = append(cat.codestarts, cs)
		case ExtensionsFile:
			if path.Dir(p) != path.Clean(root) {
				return nil
			}
			if err := cat.loadExtensions(fsys, p, validator); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func loadCodestart(fsys fs.FS, file string, validator *Validator) (*codestart.Codestart, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if err := validator.ValidateCodestart(file, data); err != nil {
		return nil, err
	}

	var spec codestart.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrConfiguration, err, "decoding %s", file)
	}
	for lang, layer := range spec.Languages {
		layer.Data = maputil.NormalizeMap(layer.Data)
		layer.SharedData = maputil.NormalizeMap(layer.SharedData)
		spec.Languages[lang] = layer
	}

	return codestart.New(codestart.Location{FS: fsys, Dir: path.Dir(file)}, spec), nil
}

type extensionIndex struct {
	Extensions []struct {
		ID         string   `yaml:"id"`
		Codestarts []string `yaml:"codestarts"`
	} `yaml:"extensions"`
}

func (c *Catalog) loadExtensions(fsys fs.FS, file string, validator *Validator) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	if err := validator.ValidateExtensions(file, data); err != nil {
		return err
	}

	var index extensionIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return oerrors.Wrapf(oerrors.ErrConfiguration, err, "decoding %s", file)
	}
	for _, ext := range index.Extensions {
		dep, err := codestart.ParseDependency(ext.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		c.extensions[dep.Key()] = append(c.extensions[dep.Key()], ext.Codestarts...)
	}
	return nil
}

// Codestarts returns the codestarts in catalog order.
func (c *Catalog) Codestarts() []*codestart.Codestart {
	return c.codestarts
}

// Find returns the codestart with the given name.
func (c *Catalog) Find(name string) (*codestart.Codestart, bool) {
	for _, cs := range c.codestarts {
		if cs.Name() == name {
			return cs, true
		}
	}
	return nil, false
}

// CodestartsFor returns the codestart refs enabled by an extension. The
// extension version, if any, is ignored.
func (c *Catalog) CodestartsFor(ext codestart.Dependency) []string {
	return c.extensions[ext.Key()]
}

// ExtensionCount returns the number of indexed extensions.
func (c *Catalog) ExtensionCount() int {
	return len(c.extensions)
}

// Add overlays other onto c. A codestart in other replaces the one with the
// same name in place; new codestarts are appended. Extension mappings are
// replaced per extension key.
func (c *Catalog) Add(other *Catalog) {
	for _, cs := range other.codestarts {
		replaced := false
		for i, existing := range c.codestarts {
			if existing.Name() == cs.Name() {
				c.codestarts[i] = cs
				replaced = true
				break
			}
		}
		if !replaced {
			c.codestarts = append(c.codestarts, cs)
		}
	}
	for key, refs := range other.extensions {
		c.extensions[key] = refs
	}
}
