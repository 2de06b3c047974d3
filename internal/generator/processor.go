// Package generator writes the files of resolved codestarts into a target
// directory.
//
// Each source file is classified by markers in its name. A reader decides
// how the file's content is produced (template rendering, include fragment,
// raw text) and a writer decides how it lands on disk (overwrite, append,
// config merge, pom merge). Files matching no marker are copied as is.
// Stateful writers buffer until Close, which flushes them once.
package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/render"
)

// Processor is a single generation run over one target directory. It must
// not be reused after Close.
type Processor struct {
	targetDir string
	language  string
	data      map[string]any

	readers  []FileReader
	writers  []FileWriter
	fallback FileWriter

	files  []string
	seen   map[string]bool
	closed bool
}

// NewProcessor creates a processor writing into targetDir.
func NewProcessor(targetDir, language string, data map[string]any, renderer render.Renderer) *Processor {
	return &Processor{
		targetDir: targetDir,
		language:  language,
		data:      data,
		readers: []FileReader{
			includeReader{},
			templateReader{renderer: renderer},
		},
		writers: []FileWriter{
			newAppendWriter(),
			newPomMergeWriter(),
			newConfigMergeWriter(),
		},
		fallback: overwriteWriter{},
		seen:     map[string]bool{},
	}
}

// CheckTargetDir creates the target directory, or verifies that an existing
// one is an empty directory.
func (p *Processor) CheckTargetDir() error {
	info, err := os.Stat(p.targetDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(p.targetDir, 0o755); err != nil {
			return &oerrors.DetailError{
				Type:     "precondition failed",
				Message:  "failed to create target directory",
				Location: p.targetDir,
				Cause:    fmt.Errorf("%w: %w", oerrors.ErrPrecondition, err),
			}
		}
		return nil
	case err != nil:
		return fmt.Errorf("checking target directory %s: %w", p.targetDir, err)
	case !info.IsDir():
		return oerrors.NewPreconditionError("target is not a directory", p.targetDir, "")
	}

	entries, err := os.ReadDir(p.targetDir)
	if err != nil {
		return fmt.Errorf("reading target directory %s: %w", p.targetDir, err)
	}
	if len(entries) > 0 {
		return oerrors.NewPreconditionError("target directory is not empty", p.targetDir,
			"choose a new or empty directory")
	}
	return nil
}

// Process writes one codestart's base tree, then its language tree.
func (p *Processor) Process(cs *codestart.Codestart) error {
	if p.closed {
		return fmt.Errorf("processor for %s is closed", p.targetDir)
	}

	logger := output.CodestartLogger(cs.Name())
	subtrees := []string{codestart.BaseLanguage}
	if p.language != codestart.BaseLanguage {
		subtrees = append(subtrees, p.language)
	}

	for _, sub := range subtrees {
		root := path.Join(cs.Location.Dir, sub)
		info, err := fs.Stat(cs.Location.FS, root)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("codestart %s: %w", cs.Name(), err)
		}
		if !info.IsDir() {
			continue
		}

		logger.Debug("processing", "tree", sub)
		err = fs.WalkDir(cs.Location.FS, root, func(file string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("walking %s: %w", file, err)
			}
			if d.IsDir() {
				return nil
			}
			return p.processFile(cs, file, strings.TrimPrefix(file, root+"/"))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) processFile(cs *codestart.Codestart, file, rel string) error {
	content, err := fs.ReadFile(cs.Location.FS, file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	name := path.Base(rel)
	reader := p.reader(name)
	if reader == nil && p.writer(name) == nil {
		target := p.target(rel, name)
		output.Debug("copying file", "codestart", cs.Name(), "source", rel)
		if err := writeFile(target, content, fileMode(cs.Location.FS, file)); err != nil {
			return err
		}
		p.record(target)
		return nil
	}

	text := string(content)
	if reader != nil {
		var ok bool
		text, ok, err = reader.Read(Source{Codestart: cs, Path: file, Content: content}, p.language, p.data)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		name = reader.CleanFileName(name)
	}

	writer := p.writer(name)
	if writer == nil {
		writer = p.fallback
	}
	target := p.target(rel, writer.CleanFileName(name))

	output.Debug("writing file", "codestart", cs.Name(), "source", rel, "target", target)
	written, err := writer.Write(text, target, p.data)
	if err != nil {
		return fmt.Errorf("codestart %s, file %s: %w", cs.Name(), rel, err)
	}
	p.record(written)
	return nil
}

// Close flushes every stateful writer. Later calls do nothing.
func (p *Processor) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	for _, w := range p.writers {
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the written paths relative to the target directory, in the
// order they were first produced.
func (p *Processor) Files() []string {
	return append([]string(nil), p.files...)
}

func (p *Processor) reader(name string) FileReader {
	for _, r := range p.readers {
		if r.Matches(name) {
			return r
		}
	}
	return nil
}

func (p *Processor) writer(name string) FileWriter {
	for _, w := range p.writers {
		if w.Matches(name) {
			return w
		}
	}
	return nil
}

func (p *Processor) target(rel, name string) string {
	return filepath.Join(p.targetDir, filepath.FromSlash(path.Dir(rel)), name)
}

func (p *Processor) record(target string) {
	rel, err := filepath.Rel(p.targetDir, target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if !p.seen[rel] {
		p.seen[rel] = true
		p.files = append(p.files, rel)
	}
}

func fileMode(fsys fs.FS, file string) fs.FileMode {
	info, err := fs.Stat(fsys, file)
	if err == nil && info.Mode()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
