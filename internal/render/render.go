// Package render renders codestart templates.
//
// Templates use text/template syntax with the sprig function library. Data
// lookups are strict: a key missing from the data context fails the render
// instead of producing empty text. Two functions are added on top of
// sprig:
//
//	{{ value "project.group-id" }}   dotted-path lookup, fails when absent
//	{{ include "name" }}             renders a named include of the same codestart
//	{{ include "name" .item }}       same, with an explicit dot
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

// MaxIncludeDepth bounds nested includes.
const MaxIncludeDepth = 16

// IncludeLocator returns the source of a named include. found is false when
// no include with that name exists.
type IncludeLocator func(name string) (content string, found bool, err error)

// Renderer renders a template against a data context.
type Renderer interface {
	Render(name, content string, data map[string]any, locate IncludeLocator) (string, error)
}

// TemplateRenderer is the text/template backed Renderer.
type TemplateRenderer struct {
	maxDepth int
}

// New returns a TemplateRenderer.
func New() *TemplateRenderer {
	return &TemplateRenderer{maxDepth: MaxIncludeDepth}
}

// Render renders content. A nil locator makes every include fail.
func (r *TemplateRenderer) Render(name, content string, data map[string]any, locate IncludeLocator) (string, error) {
	s := &session{data: data, locate: locate, maxDepth: r.maxDepth}
	return s.render(name, content, data)
}

// session carries the state of one top-level Render call.
type session struct {
	data     map[string]any
	locate   IncludeLocator
	depth    int
	maxDepth int
}

func (s *session) render(name, content string, dot any) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(s.funcs()).
		Parse(content)
	if err != nil {
		return "", oerrors.Wrapf(oerrors.ErrRender, err, "parsing template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, dot); err != nil {
		return "", oerrors.Wrapf(oerrors.ErrRender, err, "rendering %s", name)
	}
	return buf.String(), nil
}

func (s *session) funcs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["value"] = s.value
	funcs["include"] = s.include
	return funcs
}

func (s *session) value(path string) (any, error) {
	v, ok := maputil.Get(s.data, path)
	if !ok {
		return nil, fmt.Errorf("missing value %q", path)
	}
	return v, nil
}

func (s *session) include(name string, dot ...any) (string, error) {
	if s.depth >= s.maxDepth {
		return "", fmt.Errorf("include %q: nesting deeper than %d", name, s.maxDepth)
	}
	if s.locate == nil {
		return "", fmt.Errorf("include %q not found", name)
	}

	content, found, err := s.locate(name)
	if err != nil {
		return "", fmt.Errorf("include %q: %w", name, err)
	}
	if !found {
		return "", fmt.Errorf("include %q not found", name)
	}

	var data any = s.data
	if len(dot) > 0 {
		data = dot[0]
	}

	s.depth++
	defer func() { s.depth-- }()
	return s.render(name, content, data)
}
