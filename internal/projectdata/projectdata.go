// Package projectdata builds the data context templates are rendered
// against.
package projectdata

import (
	"github.com/paulrobinson/quarkus/internal/codestart"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

// Keys written into the data context.
const (
	KeyDependencies     = "dependencies"
	KeyTestDependencies = "test-dependencies"
	KeyProjectMetadata  = "codestart-project"
)

// ConfigNamePath is the dotted path of the resolved config codestart name.
const ConfigNamePath = KeyProjectMetadata + ".config.name"

// Build merges the data context for a resolved codestart list:
// shared data, then local data, then override, then the dependency view,
// then project metadata. Later layers win.
func Build(codestarts []*codestart.Codestart, language string, extensions []codestart.Dependency, override map[string]any) map[string]any {
	shared := make([]map[string]any, 0, len(codestarts))
	local := make([]map[string]any, 0, len(codestarts))
	for _, cs := range codestarts {
		shared = append(shared, cs.SharedData(language))
		local = append(local, cs.LocalData(language))
	}

	return maputil.Merge(
		maputil.Merge(shared...),
		maputil.Merge(local...),
		override,
		Dependencies(codestarts, language, extensions),
		Metadata(codestarts),
	)
}

// Metadata maps each codestart category to the name of the codestart
// resolved for it, under codestart-project.<category>.name. The last
// codestart of a category wins.
func Metadata(codestarts []*codestart.Codestart) map[string]any {
	byCategory := make(map[string]any, len(codestarts))
	for _, cs := range codestarts {
		byCategory[cs.Category().String()] = map[string]any{"name": cs.Name()}
	}
	return map[string]any{KeyProjectMetadata: byCategory}
}

// Dependencies aggregates dependency lists: the extensions first, then each
// codestart's base and language lists in order. Duplicates are kept.
func Dependencies(codestarts []*codestart.Codestart, language string, extensions []codestart.Dependency) map[string]any {
	deps := make([]any, 0, len(extensions))
	for _, ext := range extensions {
		deps = append(deps, ext.ToMap())
	}
	testDeps := make([]any, 0)

	for _, cs := range codestarts {
		for _, d := range cs.Dependencies(language) {
			deps = append(deps, d.ToMap())
		}
		for _, d := range cs.TestDependencies(language) {
			testDeps = append(testDeps, d.ToMap())
		}
	}

	return map[string]any{
		KeyDependencies:     deps,
		KeyTestDependencies: testDeps,
	}
}
