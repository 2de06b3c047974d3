package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"cat/extensions.yml": file(`
extensions:
  - id: io.quarkus:quarkus-resteasy
    codestarts: [rest]
`),
		"cat/a-project/codestart.yml": file(`
name: proj
category: Project
fallback: true
spec:
  base:
    shared-data:
      project:
        group-id: org.acme
`),
		"cat/a-project/base/README.md.tmpl": file("readme"),
		"cat/b-rest/codestart.yaml": file(`
name: rest
ref: resteasy
type: example
spec:
  java:
    dependencies:
      - io.quarkus:quarkus-resteasy
`),
	}

	cat, err := Load(fsys, "cat")
	require.NoError(t, err)

	require.Len(t, cat.Codestarts(), 2)
	proj := cat.Codestarts()[0]
	assert.Equal(t, "proj", proj.Name())
	assert.Equal(t, codestart.CategoryProject, proj.Category())
	assert.True(t, proj.IsFallback())
	assert.Equal(t, "cat/a-project", proj.Location.Dir)
	assert.Equal(t, map[string]any{"project": map[string]any{"group-id": "org.acme"}},
		proj.SharedData("java"))

	rest, ok := cat.Find("rest")
	require.True(t, ok)
	assert.Equal(t, "resteasy", rest.Ref())
	assert.True(t, rest.IsExample())
	assert.Len(t, rest.Dependencies("java"), 1)

	assert.Equal(t, 1, cat.ExtensionCount())
	assert.Equal(t, []string{"rest"},
		cat.CodestartsFor(codestart.NewDependency("io.quarkus", "quarkus-resteasy", "3.0")))
}

func TestLoad_InvalidSpec(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing name", content: "category: project\n"},
		{name: "unknown category", content: "name: x\ncategory: plugin\n"},
		{name: "unknown field", content: "name: x\nfallbak: true\n"},
		{name: "bad dependency", content: "name: x\nspec:\n  base:\n    dependencies: [\"a:b:c:d\"]\n"},
		{name: "bad name", content: "name: Not Valid\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"x/codestart.yml": file(tt.content)}
			_, err := Load(fsys, ".")
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrConfiguration), err.Error())

			var detail *oerrors.DetailError
			require.True(t, errors.As(err, &detail))
			assert.Equal(t, "x/codestart.yml", detail.Location)
		})
	}
}

func TestLoad_DuplicateName(t *testing.T) {
	fsys := fstest.MapFS{
		"a/codestart.yml": file("name: same\n"),
		"b/codestart.yml": file("name: same\n"),
	}
	_, err := Load(fsys, ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
	assert.Contains(t, err.Error(), "duplicate codestart name")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "custom"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom", "codestart.yml"),
		[]byte("name: custom\ncategory: tooling\npreselected: true\n"), 0o644))

	cat, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, cat.Codestarts(), 1)
	assert.True(t, cat.Codestarts()[0].IsPreselected())
	assert.Equal(t, "custom", cat.Codestarts()[0].Location.Dir)
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestAdd(t *testing.T) {
	base := New()
	base.Add(mustLoad(t, fstest.MapFS{
		"a/codestart.yml": file("name: a\n"),
		"b/codestart.yml": file("name: b\n"),
	}))
	base.Add(mustLoad(t, fstest.MapFS{
		"a/codestart.yml": file("name: a\ncategory: tooling\n"),
		"c/codestart.yml": file("name: c\n"),
	}))

	var names []string
	for _, cs := range base.Codestarts() {
		names = append(names, cs.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	a, _ := base.Find("a")
	assert.Equal(t, codestart.CategoryTooling, a.Category())
}

func TestBundled(t *testing.T) {
	cat, err := Bundled()
	require.NoError(t, err)

	for _, name := range []string{
		"quarkus", "java", "kotlin", "maven", "gradle",
		"config-properties", "config-yaml", "dockerfiles",
		"commandmode-example", "resteasy-example",
	} {
		_, ok := cat.Find(name)
		assert.True(t, ok, name)
	}

	fallbacks := map[codestart.Category]string{}
	for _, cs := range cat.Codestarts() {
		if cs.IsFallback() {
			_, dup := fallbacks[cs.Category()]
			assert.False(t, dup, "second fallback for %s", cs.Category())
			fallbacks[cs.Category()] = cs.Name()
		}
	}
	assert.Equal(t, map[codestart.Category]string{
		codestart.CategoryProject:   "quarkus",
		codestart.CategoryLanguage:  "java",
		codestart.CategoryBuildTool: "maven",
		codestart.CategoryConfig:    "config-properties",
	}, fallbacks)

	assert.Equal(t, []string{"resteasy-example"},
		cat.CodestartsFor(codestart.NewDependency("io.quarkus", "quarkus-resteasy", "")))
}

func mustLoad(t *testing.T, fsys fstest.MapFS) *Catalog {
	t.Helper()
	cat, err := Load(fsys, ".")
	require.NoError(t, err)
	return cat
}
