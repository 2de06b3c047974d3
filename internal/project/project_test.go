package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrobinson/quarkus/internal/catalog"
	"github.com/paulrobinson/quarkus/internal/codestart"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

// minimalCatalog has one fallback codestart per category-defining category.
func minimalCatalog(t *testing.T, extra fstest.MapFS) *catalog.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"project/codestart.yml":            file("name: proj\ncategory: project\nfallback: true\nspec:\n  base:\n    data:\n      title: Demo\n"),
		"project/base/README.md.tmpl":      file("# {{ .title }}\n"),
		"project/base/.gitignore.append":   file("*.log\n"),
		"lang/codestart.yml":               file("name: lang\ncategory: language\nfallback: true\n"),
		"lang/lang/src/Main.txt":           file("main"),
		"build/codestart.yml":              file("name: build\ncategory: buildtool\nfallback: true\n"),
		"build/base/.gitignore.append":     file("build/\n"),
		"build/base/build.file.tmpl":       file("deps={{ len .dependencies }}\n"),
		"config/codestart.yml":             file("name: config-yaml\ncategory: config\nfallback: true\n"),
		"config/base/app.yml.config-merge": file("config: true\n"),
	}
	for k, v := range extra {
		fsys[k] = v
	}
	cat, err := catalog.Load(fsys, ".")
	require.NoError(t, err)
	return cat
}

func walk(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, p)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func read(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func names(list []*codestart.Codestart) []string {
	out := make([]string, len(list))
	for i, cs := range list {
		out[i] = cs.Name()
	}
	return out
}

func TestInputBuilder(t *testing.T) {
	input, err := NewInputBuilder().
		AddExtension("io.quarkus:quarkus-resteasy").
		AddCodestarts("gradle", "kotlin").
		IncludeExamples(true).
		AddData(map[string]any{"project.group-id": "org.acme", "project.version": "1.0"}).
		PutData("project.version", "2.0").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []codestart.Dependency{codestart.NewDependency("io.quarkus", "quarkus-resteasy", "")}, input.Extensions)
	assert.Equal(t, []string{"gradle", "kotlin"}, input.Codestarts)
	assert.True(t, input.IncludeExamples)
	assert.Equal(t, map[string]any{
		"project": map[string]any{"group-id": "org.acme", "version": "2.0"},
	}, input.Data)
}

func TestInputBuilder_Errors(t *testing.T) {
	_, err := NewInputBuilder().AddExtension("not-a-coordinate").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))

	_, err = NewInputBuilder().PutData("a", 1).PutData("a.b", 2).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
}

func TestGenerate_FallbacksOnly(t *testing.T) {
	cat := minimalCatalog(t, nil)
	input, err := NewInputBuilder().Build()
	require.NoError(t, err)

	p, err := Prepare(input, cat, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"proj", "lang", "build", "config-yaml"}, names(p.Codestarts))
	assert.Equal(t, "lang", p.Language)
	assert.Len(t, p.BaseCodestarts(), 4)
	assert.Empty(t, p.ExtraCodestarts())

	dir := filepath.Join(t.TempDir(), "app")
	files, err := Generate(p, dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{".gitignore", "README.md", "app.yml", "build.file", "src/Main.txt"}, walk(t, dir))
	assert.ElementsMatch(t, walk(t, dir), files)
	for _, f := range walk(t, dir) {
		for _, marker := range []string{".tmpl", ".append", ".config-merge", ".pom-merge"} {
			assert.NotContains(t, f, marker)
		}
	}

	assert.Equal(t, "# Demo\n", read(t, filepath.Join(dir, "README.md")))
	assert.Equal(t, "*.log\n\nbuild/\n", read(t, filepath.Join(dir, ".gitignore")))
	assert.Equal(t, "config: true\n", read(t, filepath.Join(dir, "app.yml")))
	assert.Equal(t, "deps=0\n", read(t, filepath.Join(dir, "build.file")))
}

func TestPrepare_DefaultExample(t *testing.T) {
	example := fstest.MapFS{
		"example/codestart.yml":         file("name: commandmode-example\ncategory: example\n"),
		"example/lang/Example.txt.tmpl": file("{{ value \"codestart-project.example.name\" }}"),
	}

	input, err := NewInputBuilder().IncludeExamples(true).Build()
	require.NoError(t, err)

	p, err := Prepare(input, minimalCatalog(t, example), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"commandmode-example"}, names(p.ExtraCodestarts()))

	dir := t.TempDir()
	_, err = Generate(p, dir)
	require.NoError(t, err)
	assert.Equal(t, "commandmode-example", read(t, filepath.Join(dir, "Example.txt")))

	_, err = Prepare(input, minimalCatalog(t, nil), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
}

func TestPrepare_UnknownCodestart(t *testing.T) {
	input, err := NewInputBuilder().AddCodestart("missing").Build()
	require.NoError(t, err)

	_, err = Prepare(input, minimalCatalog(t, nil), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestGenerate_NonEmptyTarget(t *testing.T) {
	input, err := NewInputBuilder().Build()
	require.NoError(t, err)
	p, err := Prepare(input, minimalCatalog(t, nil), Options{})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing"), nil, 0o644))

	_, err = Generate(p, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
}

func TestGenerate_BundledDefaults(t *testing.T) {
	cat, err := catalog.Bundled()
	require.NoError(t, err)

	input, err := NewInputBuilder().
		PutData("project.artifact-id", "my-app").
		Build()
	require.NoError(t, err)

	p, err := Prepare(input, cat, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"quarkus", "java", "maven", "config-properties", "dockerfiles"}, names(p.Codestarts))

	dir := t.TempDir()
	files, err := Generate(p, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		".gitignore",
		"README.md",
		"src/main/resources/application.properties",
		"pom.xml",
		".dockerignore",
		"src/main/docker/Dockerfile.jvm",
	}, files)

	pom := read(t, filepath.Join(dir, "pom.xml"))
	assert.Contains(t, pom, "<artifactId>my-app</artifactId>")
	assert.Contains(t, pom, "<artifactId>quarkus-arc</artifactId>")
	assert.Contains(t, pom, "<maven.compiler.release>17</maven.compiler.release>")

	assert.Equal(t, "quarkus.application.name=my-app\n",
		read(t, filepath.Join(dir, "src", "main", "resources", "application.properties")))
	assert.Contains(t, read(t, filepath.Join(dir, "README.md")), "./mvnw quarkus:dev")
	assert.Contains(t, read(t, filepath.Join(dir, ".gitignore")), "target/")
}

func TestGenerate_BundledKotlinGradle(t *testing.T) {
	cat, err := catalog.Bundled()
	require.NoError(t, err)

	input, err := NewInputBuilder().
		AddCodestart("kotlin").
		AddExtension("io.quarkus:quarkus-config-yaml").
		AddExtension("io.quarkus:quarkus-resteasy").
		IncludeExamples(true).
		PutData(BuildToolNamePath, "gradle").
		Build()
	require.NoError(t, err)

	p, err := Prepare(input, cat, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"quarkus", "kotlin", "gradle", "config-yaml", "resteasy-example", "dockerfiles"},
		names(p.Codestarts))

	data := p.Data()
	name, _ := maputil.GetString(data, "codestart-project.buildtool.name")
	assert.Equal(t, "gradle", name)

	dir := t.TempDir()
	_, err = Generate(p, dir)
	require.NoError(t, err)

	build := read(t, filepath.Join(dir, "build.gradle"))
	assert.Contains(t, build, "id 'org.jetbrains.kotlin.jvm' version \"2.0.20\"")
	assert.NotContains(t, build, "id 'java'")
	assert.Contains(t, build, "implementation 'io.quarkus:quarkus-resteasy'")
	assert.Contains(t, build, "implementation 'io.quarkus:quarkus-config-yaml'")
	assert.Contains(t, build, "testImplementation 'io.rest-assured:rest-assured'")

	config := read(t, filepath.Join(dir, "src", "main", "resources", "application.yml"))
	assert.Contains(t, config, "message: Hello from RESTEasy")
	assert.Contains(t, config, "name: code-with-quarkus")
	assert.NoFileExists(t, filepath.Join(dir, "src", "main", "resources", "application.properties"))

	resource := read(t, filepath.Join(dir, "src", "main", "kotlin", "org", "acme", "GreetingResource.kt"))
	assert.True(t, strings.HasPrefix(resource, "package org.acme\n"))
	assert.FileExists(t, filepath.Join(dir, ".editorconfig"))
	assert.NoFileExists(t, filepath.Join(dir, "pom.xml"))
}

func TestGenerate_BundledKotlinMavenMergesPom(t *testing.T) {
	cat, err := catalog.Bundled()
	require.NoError(t, err)

	input, err := NewInputBuilder().AddExtension("io.quarkus:quarkus-kotlin").Build()
	require.NoError(t, err)

	p, err := Prepare(input, cat, Options{})
	require.NoError(t, err)
	assert.Equal(t, "kotlin", p.Language)

	dir := t.TempDir()
	_, err = Generate(p, dir)
	require.NoError(t, err)

	pom := read(t, filepath.Join(dir, "pom.xml"))
	assert.Contains(t, pom, "<artifactId>kotlin-maven-plugin</artifactId>")
	assert.Contains(t, pom, "<kotlin.version>2.0.20</kotlin.version>")
	assert.Contains(t, pom, "<sourceDirectory>src/main/kotlin</sourceDirectory>")
	assert.Contains(t, pom, "<artifactId>quarkus-maven-plugin</artifactId>")
	assert.Contains(t, pom, "<artifactId>quarkus-kotlin</artifactId>")
}
