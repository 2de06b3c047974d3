// Package selector resolves which codestarts take part in a generation run.
package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/output"
)

// DefaultExampleName is the example included when examples are requested
// but none was selected.
const DefaultExampleName = "commandmode-example"

// Options controls resolution.
type Options struct {
	// IncludeExamples allows example codestarts to be selected.
	IncludeExamples bool

	// DefaultExample overrides DefaultExampleName.
	DefaultExample string
}

// ConflictError reports a category that did not resolve to exactly one
// codestart.
type ConflictError struct {
	Category   codestart.Category
	Candidates []string
	Reason     string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: no %s codestart requested and no fallback available",
			oerrors.ErrSelection, e.Category)
	}
	return fmt.Sprintf("%s: %s for category %s: [%s]",
		oerrors.ErrSelection, e.Reason, e.Category, strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrSelection.
func (e *ConflictError) Unwrap() error {
	return oerrors.ErrSelection
}

// Resolve picks the codestarts for a run from all, given the requested refs.
//
// Exactly one codestart is chosen for each category-defining category: the
// requested one, or else the fallback. Other codestarts are chosen when
// preselected or requested; examples only when opts.IncludeExamples is set.
// The result lists category-defining codestarts first, in category order,
// then the others in catalog order.
func Resolve(all []*codestart.Codestart, refs []string, opts Options) ([]*codestart.Codestart, error) {
	requested := make(map[string]bool, len(refs))
	for _, ref := range refs {
		requested[ref] = true
	}

	base, err := resolveBase(all, requested)
	if err != nil {
		return nil, err
	}

	var extras []*codestart.Codestart
	hasExample := false
	for _, cs := range all {
		if cs.IsBase() {
			continue
		}
		if !cs.IsPreselected() && !requested[cs.Ref()] {
			continue
		}
		if cs.IsExample() {
			if !opts.IncludeExamples {
				continue
			}
			hasExample = true
		}
		extras = append(extras, cs)
	}

	if opts.IncludeExamples && !hasExample {
		name := opts.DefaultExample
		if name == "" {
			name = DefaultExampleName
		}
		fallback := findByName(all, name)
		if fallback == nil {
			return nil, oerrors.NewConfigurationError(
				fmt.Sprintf("default example codestart %q is not in the catalog", name),
				"", "defaultExample",
				"add the codestart to a catalog or pick an example explicitly")
		}
		output.Debug("no example selected, adding default", "codestart", name)
		extras = append(extras, fallback)
	}

	return append(base, extras...), nil
}

func resolveBase(all []*codestart.Codestart, requested map[string]bool) ([]*codestart.Codestart, error) {
	candidates := make(map[codestart.Category][]*codestart.Codestart)
	for _, cs := range all {
		if !cs.IsBase() || cs.IsExample() {
			continue
		}
		if requested[cs.Ref()] || cs.IsFallback() {
			candidates[cs.Category()] = append(candidates[cs.Category()], cs)
		}
	}

	result := make([]*codestart.Codestart, 0, len(codestart.BaseCategories))
	for _, category := range codestart.BaseCategories {
		chosen, err := pick(category, candidates[category])
		if err != nil {
			return nil, err
		}
		output.Debug("resolved codestart", "category", category, "codestart", chosen.Name())
		result = append(result, chosen)
	}
	return result, nil
}

func pick(category codestart.Category, candidates []*codestart.Codestart) (*codestart.Codestart, error) {
	var chosen, fallback []*codestart.Codestart
	for _, cs := range candidates {
		if cs.IsFallback() {
			fallback = append(fallback, cs)
		} else {
			chosen = append(chosen, cs)
		}
	}

	switch {
	case len(chosen) == 1:
		return chosen[0], nil
	case len(chosen) > 1:
		return nil, &ConflictError{Category: category, Candidates: names(chosen),
			Reason: "more than one codestart requested"}
	case len(fallback) == 1:
		return fallback[0], nil
	case len(fallback) > 1:
		return nil, &ConflictError{Category: category, Candidates: names(fallback),
			Reason: "more than one fallback codestart"}
	default:
		return nil, &ConflictError{Category: category}
	}
}

func findByName(all []*codestart.Codestart, name string) *codestart.Codestart {
	for _, cs := range all {
		if cs.Name() == name {
			return cs
		}
	}
	return nil
}

func names(list []*codestart.Codestart) []string {
	out := make([]string, len(list))
	for i, cs := range list {
		out[i] = cs.Name()
	}
	sort.Strings(out)
	return out
}
