package project

import (
	"errors"

	"github.com/paulrobinson/quarkus/internal/codestart"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

// Input is a generation request.
type Input struct {
	// Extensions are the extensions the project depends on. They are added
	// to the dependency list and may enable codestarts.
	Extensions []codestart.Dependency

	// Codestarts are explicitly requested codestart refs.
	Codestarts []string

	// IncludeExamples allows example codestarts.
	IncludeExamples bool

	// Data overrides codestart data. Keys are nested.
	Data map[string]any
}

// InputBuilder assembles an Input. Data keys may use dotted notation; they
// are expanded by Build.
type InputBuilder struct {
	input Input
	data  map[string]any
	errs  []error
}

// NewInputBuilder returns an empty builder.
func NewInputBuilder() *InputBuilder {
	return &InputBuilder{data: map[string]any{}}
}

// AddExtensions adds extensions.
func (b *InputBuilder) AddExtensions(deps ...codestart.Dependency) *InputBuilder {
	b.input.Extensions = append(b.input.Extensions, deps...)
	return b
}

// AddExtension parses and adds a "group:artifact[:version]" extension. A
// malformed expression is reported by Build.
func (b *InputBuilder) AddExtension(expr string) *InputBuilder {
	dep, err := codestart.ParseDependency(expr)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.AddExtensions(dep)
}

// AddCodestart requests a codestart by ref.
func (b *InputBuilder) AddCodestart(ref string) *InputBuilder {
	b.input.Codestarts = append(b.input.Codestarts, ref)
	return b
}

// AddCodestarts requests codestarts by ref.
func (b *InputBuilder) AddCodestarts(refs ...string) *InputBuilder {
	b.input.Codestarts = append(b.input.Codestarts, refs...)
	return b
}

// IncludeExamples toggles example codestarts.
func (b *InputBuilder) IncludeExamples(include bool) *InputBuilder {
	b.input.IncludeExamples = include
	return b
}

// AddData adds data entries. Later entries win.
func (b *InputBuilder) AddData(data map[string]any) *InputBuilder {
	for k, v := range data {
		b.data[k] = v
	}
	return b
}

// PutData sets one data entry.
func (b *InputBuilder) PutData(key string, value any) *InputBuilder {
	b.data[key] = value
	return b
}

// Build returns the Input, expanding dotted data keys.
func (b *InputBuilder) Build() (Input, error) {
	if err := errors.Join(b.errs...); err != nil {
		return Input{}, err
	}

	data, err := maputil.Unflatten(b.data)
	if err != nil {
		return Input{}, err
	}

	input := b.input
	input.Extensions = append([]codestart.Dependency(nil), b.input.Extensions...)
	input.Codestarts = append([]string(nil), b.input.Codestarts...)
	input.Data = data
	return input, nil
}
