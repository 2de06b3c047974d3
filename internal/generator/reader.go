package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/paulrobinson/quarkus/internal/codestart"
	"github.com/paulrobinson/quarkus/internal/render"
)

// Filename markers recognised by the readers.
const (
	TemplateMarker = ".tmpl"
	IncludeMarker  = ".include-tmpl"
)

// Source is one file of a codestart being processed.
type Source struct {
	Codestart *codestart.Codestart
	// Path is the file path inside the codestart's FS.
	Path    string
	Content []byte
}

// FileReader turns a source file into text to be written.
type FileReader interface {
	Matches(name string) bool
	CleanFileName(name string) string
	// Read returns the text to write. ok is false when the file produces no
	// output of its own.
	Read(src Source, language string, data map[string]any) (text string, ok bool, err error)
}

// includeReader swallows include fragments. They are only rendered when a
// template pulls them in.
type includeReader struct{}

func (includeReader) Matches(name string) bool { return strings.Contains(name, IncludeMarker) }

func (includeReader) CleanFileName(name string) string {
	return strings.ReplaceAll(name, IncludeMarker, "")
}

func (includeReader) Read(Source, string, map[string]any) (string, bool, error) {
	return "", false, nil
}

// templateReader renders templates.
type templateReader struct {
	renderer render.Renderer
}

func (r templateReader) Matches(name string) bool { return strings.Contains(name, TemplateMarker) }

func (r templateReader) CleanFileName(name string) string {
	return strings.ReplaceAll(name, TemplateMarker, "")
}

func (r templateReader) Read(src Source, language string, data map[string]any) (string, bool, error) {
	text, err := r.renderer.Render(src.Path, string(src.Content), data, includeLocator(src.Codestart, language))
	if err != nil {
		return "", false, fmt.Errorf("codestart %s: %w", src.Codestart.Name(), err)
	}
	return text, true, nil
}

// includeLocator resolves <name>.include-tmpl in the language tree, then the
// base tree, of one codestart.
func includeLocator(cs *codestart.Codestart, language string) render.IncludeLocator {
	return func(name string) (string, bool, error) {
		dirs := []string{language, codestart.BaseLanguage}
		if language == codestart.BaseLanguage {
			dirs = dirs[1:]
		}
		for _, dir := range dirs {
			p := path.Join(cs.Location.Dir, dir, name+IncludeMarker)
			content, err := fs.ReadFile(cs.Location.FS, p)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return "", false, fmt.Errorf("reading %s: %w", p, err)
			}
			return string(content), true, nil
		}
		return "", false, nil
	}
}
