// Package project ties catalog, selection, data and file generation
// together into one generation run.
package project

import (
	"fmt"

	"github.com/paulrobinson/quarkus/internal/catalog"
	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/generator"
	"github.com/paulrobinson/quarkus/internal/maputil"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/projectdata"
	"github.com/paulrobinson/quarkus/internal/render"
	"github.com/paulrobinson/quarkus/internal/selector"
)

// BuildToolNamePath is the data key that selects the build tool codestart.
const BuildToolNamePath = "buildtool.name"

// Options configures Prepare.
type Options struct {
	// DefaultExample overrides the example added when examples are included
	// but none was selected.
	DefaultExample string
}

// Project is a resolved generation request.
type Project struct {
	Input      Input
	Codestarts []*codestart.Codestart
	Language   string
}

// Prepare resolves the codestarts for input from cat.
//
// The requested refs are the explicit codestarts, the codestarts enabled by
// the input extensions and the build tool named by the buildtool.name data
// key. Every explicitly requested ref must exist in the catalog.
func Prepare(input Input, cat *catalog.Catalog, opts Options) (*Project, error) {
	refs := append([]string(nil), input.Codestarts...)
	if buildTool, ok := maputil.GetString(input.Data, BuildToolNamePath); ok {
		refs = append(refs, buildTool)
	}
	if err := checkRefs(cat, refs); err != nil {
		return nil, err
	}
	for _, ext := range input.Extensions {
		mapped := cat.CodestartsFor(ext)
		if len(mapped) > 0 {
			output.Debug("extension enables codestarts", "extension", ext.Key(), "codestarts", mapped)
		}
		refs = append(refs, mapped...)
	}

	selected, err := selector.Resolve(cat.Codestarts(), refs, selector.Options{
		IncludeExamples: input.IncludeExamples,
		DefaultExample:  opts.DefaultExample,
	})
	if err != nil {
		return nil, err
	}

	p := &Project{Input: input, Codestarts: selected}
	language, err := p.RequiredCodestart(codestart.CategoryLanguage)
	if err != nil {
		return nil, err
	}
	p.Language = language.Name()
	return p, nil
}

func checkRefs(cat *catalog.Catalog, refs []string) error {
	known := make(map[string]bool)
	for _, cs := range cat.Codestarts() {
		known[cs.Ref()] = true
	}
	for _, ref := range refs {
		if !known[ref] {
			return oerrors.NewNotFoundError(fmt.Sprintf("codestart %q is not in the catalog", ref),
				ref, "run 'codestart list' to see the available codestarts")
		}
	}
	return nil
}

// RequiredCodestart returns the codestart resolved for a category.
func (p *Project) RequiredCodestart(category codestart.Category) (*codestart.Codestart, error) {
	for _, cs := range p.Codestarts {
		if cs.Category() == category {
			return cs, nil
		}
	}
	return nil, oerrors.Wrap(oerrors.ErrSelection, fmt.Sprintf("no %s codestart resolved", category))
}

// BaseCodestarts returns the category-defining codestarts.
func (p *Project) BaseCodestarts() []*codestart.Codestart {
	var out []*codestart.Codestart
	for _, cs := range p.Codestarts {
		if cs.IsBase() {
			out = append(out, cs)
		}
	}
	return out
}

// ExtraCodestarts returns the codestarts that are not category-defining.
func (p *Project) ExtraCodestarts() []*codestart.Codestart {
	var out []*codestart.Codestart
	for _, cs := range p.Codestarts {
		if !cs.IsBase() {
			out = append(out, cs)
		}
	}
	return out
}

// Data builds the data context templates are rendered against.
func (p *Project) Data() map[string]any {
	return projectdata.Build(p.Codestarts, p.Language, p.Input.Extensions, p.Input.Data)
}

// Generate writes the project into targetDir and returns the written paths
// relative to it. targetDir must be absent or empty. A failed run leaves
// whatever was written so far.
func Generate(p *Project, targetDir string) ([]string, error) {
	return GenerateWith(p, targetDir, render.New())
}

// GenerateWith is Generate with a custom renderer.
func GenerateWith(p *Project, targetDir string, renderer render.Renderer) ([]string, error) {
	processor := generator.NewProcessor(targetDir, p.Language, p.Data(), renderer)
	if err := processor.CheckTargetDir(); err != nil {
		return nil, err
	}

	for _, cs := range p.Codestarts {
		output.Debug("generating codestart", "codestart", cs.Name(), "category", cs.Category())
		if err := processor.Process(cs); err != nil {
			return nil, err
		}
	}
	if err := processor.Close(); err != nil {
		return nil, err
	}
	return processor.Files(), nil
}
