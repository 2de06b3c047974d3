package codestart

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"project", CategoryProject, true},
		{"BuildTool", CategoryBuildTool, true},
		{" CONFIG ", CategoryConfig, true},
		{"", CategoryExample, true},
		{"plugin", Category("plugin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryIsBase(t *testing.T) {
	for _, c := range BaseCategories {
		assert.True(t, c.IsBase(), c)
	}
	assert.False(t, CategoryExample.IsBase())
	assert.False(t, CategoryTooling.IsBase())
}

func TestParseDependency(t *testing.T) {
	dep, err := ParseDependency("io.quarkus:quarkus-arc")
	require.NoError(t, err)
	assert.Equal(t, NewDependency("io.quarkus", "quarkus-arc", ""), dep)
	assert.Equal(t, "io.quarkus:quarkus-arc", dep.String())

	dep, err = ParseDependency("org.acme:lib:1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", dep.Version)
	assert.Equal(t, "org.acme:lib:1.2.3", dep.String())
	assert.Equal(t, "org.acme:lib", dep.Key())

	for _, bad := range []string{"", "single", "a:b:c:d", "a::c", ":b"} {
		_, err := ParseDependency(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, oerrors.ErrConfiguration), bad)
	}
}

func TestDependencyToMap(t *testing.T) {
	m := NewDependency("g", "a", "").ToMap()
	assert.Equal(t, map[string]any{"groupId": "g", "artifactId": "a", "version": ""}, m)
}

func TestSpecUnmarshalYAML(t *testing.T) {
	src := `
name: resteasy-example
type: Example
spec:
  base:
    data:
      path: /hello
    dependencies:
      - io.quarkus:quarkus-resteasy
      - group-id: io.rest-assured
        artifact-id: rest-assured
        version: "5.0"
  java:
    test-dependencies:
      - io.quarkus:quarkus-junit5
`
	var spec Spec
	require.NoError(t, yaml.Unmarshal([]byte(src), &spec))

	assert.Equal(t, "resteasy-example", spec.Name)
	assert.Equal(t, CategoryExample, spec.Category)
	require.Contains(t, spec.Languages, "base")
	assert.Equal(t, "/hello", spec.Languages["base"].Data["path"])
	assert.Equal(t, []Dependency{
		NewDependency("io.quarkus", "quarkus-resteasy", ""),
		NewDependency("io.rest-assured", "rest-assured", "5.0"),
	}, spec.Languages["base"].Dependencies)
	assert.Equal(t, []Dependency{NewDependency("io.quarkus", "quarkus-junit5", "")},
		spec.Languages["java"].TestDependencies)
}

func TestSpecUnmarshalYAML_Errors(t *testing.T) {
	var spec Spec
	err := yaml.Unmarshal([]byte("name: x\ncategory: plugin\n"), &spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown codestart category")

	err = yaml.Unmarshal([]byte("name: x\nspec:\n  base:\n    dependencies: [\"broken\"]\n"), &spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dependency expression")
}

func TestNewDefaults(t *testing.T) {
	cs := New(Location{}, Spec{Name: "foo"})
	assert.Equal(t, "foo", cs.Ref())
	assert.Equal(t, CategoryExample, cs.Category())
	assert.True(t, cs.IsExample())
	assert.False(t, cs.IsBase())
}

func TestLayeredData(t *testing.T) {
	cs := New(Location{}, Spec{
		Name:     "maven",
		Category: CategoryBuildTool,
		Languages: map[string]LanguageSpec{
			BaseLanguage: {
				Data:       map[string]any{"wrapper": "mvnw", "nested": map[string]any{"a": 1, "b": 1}},
				SharedData: map[string]any{"buildtool": map[string]any{"cli": "mvn"}},
				Dependencies: []Dependency{
					NewDependency("io.quarkus", "quarkus-arc", ""),
				},
			},
			"kotlin": {
				Data:       map[string]any{"nested": map[string]any{"b": 2}},
				SharedData: map[string]any{"buildtool": map[string]any{"cli": "./mvnw"}},
				Dependencies: []Dependency{
					NewDependency("io.quarkus", "quarkus-kotlin", ""),
				},
			},
		},
	})

	assert.Equal(t, map[string]any{
		"wrapper": "mvnw",
		"nested":  map[string]any{"a": 1, "b": 2},
	}, cs.LocalData("kotlin"))
	assert.Equal(t, map[string]any{
		"wrapper": "mvnw",
		"nested":  map[string]any{"a": 1, "b": 1},
	}, cs.LocalData("java"))
	assert.Equal(t, "./mvnw", cs.SharedData("kotlin")["buildtool"].(map[string]any)["cli"])

	deps := cs.Dependencies("kotlin")
	require.Len(t, deps, 2)
	assert.Equal(t, "quarkus-arc", deps[0].ArtifactID)
	assert.Equal(t, "quarkus-kotlin", deps[1].ArtifactID)
	assert.Len(t, cs.Dependencies(BaseLanguage), 1)
	assert.Equal(t, []string{"kotlin"}, cs.Languages())
}

func TestSupportsLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"cs/java/src/Main.java": {Data: []byte("class Main {}")},
	}
	cs := New(Location{FS: fsys, Dir: "cs"}, Spec{
		Name:      "cs",
		Languages: map[string]LanguageSpec{"kotlin": {}},
	})

	assert.True(t, cs.SupportsLanguage("java"))
	assert.True(t, cs.SupportsLanguage("kotlin"))
	assert.False(t, cs.SupportsLanguage("scala"))
}
