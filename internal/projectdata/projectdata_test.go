package projectdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrobinson/quarkus/internal/codestart"
	"github.com/paulrobinson/quarkus/internal/maputil"
)

func dep(expr string) codestart.Dependency {
	d, err := codestart.ParseDependency(expr)
	if err != nil {
		panic(err)
	}
	return d
}

func fixture() []*codestart.Codestart {
	return []*codestart.Codestart{
		codestart.New(codestart.Location{}, codestart.Spec{
			Name:     "quarkus",
			Category: codestart.CategoryProject,
			Languages: map[string]codestart.LanguageSpec{
				codestart.BaseLanguage: {
					SharedData: map[string]any{
						"project": map[string]any{"group-id": "org.acme", "version": "1.0"},
					},
					Data:             map[string]any{"title": "from project"},
					Dependencies:     []codestart.Dependency{dep("io.quarkus:quarkus-arc")},
					TestDependencies: []codestart.Dependency{dep("io.quarkus:quarkus-junit5")},
				},
			},
		}),
		codestart.New(codestart.Location{}, codestart.Spec{
			Name:     "kotlin",
			Category: codestart.CategoryLanguage,
			Languages: map[string]codestart.LanguageSpec{
				"kotlin": {
					SharedData:   map[string]any{"project": map[string]any{"version": "2.0"}},
					Dependencies: []codestart.Dependency{dep("io.quarkus:quarkus-kotlin")},
				},
			},
		}),
		codestart.New(codestart.Location{}, codestart.Spec{
			Name:     "rest",
			Category: codestart.CategoryExample,
			Languages: map[string]codestart.LanguageSpec{
				codestart.BaseLanguage: {
					Data:         map[string]any{"title": "from example"},
					Dependencies: []codestart.Dependency{dep("io.quarkus:quarkus-arc")},
				},
			},
		}),
	}
}

func TestBuild(t *testing.T) {
	data := Build(fixture(), "kotlin",
		[]codestart.Dependency{dep("io.quarkus:quarkus-resteasy:3.1")},
		map[string]any{"project": map[string]any{"group-id": "com.example"}})

	group, _ := maputil.GetString(data, "project.group-id")
	assert.Equal(t, "com.example", group, "override wins over shared data")

	version, _ := maputil.GetString(data, "project.version")
	assert.Equal(t, "2.0", version, "later codestart wins")

	assert.Equal(t, "from example", data["title"])

	name, ok := maputil.GetString(data, "codestart-project.language.name")
	require.True(t, ok)
	assert.Equal(t, "kotlin", name)
	name, _ = maputil.GetString(data, "codestart-project.example.name")
	assert.Equal(t, "rest", name)
}

func TestBuild_MetadataBeatsOverride(t *testing.T) {
	data := Build(fixture(), "java", nil, map[string]any{
		"codestart-project": map[string]any{"project": map[string]any{"name": "hijacked"}},
	})
	name, _ := maputil.GetString(data, "codestart-project.project.name")
	assert.Equal(t, "quarkus", name)
}

func TestDependencies(t *testing.T) {
	deps := Dependencies(fixture(), "kotlin", []codestart.Dependency{dep("io.quarkus:quarkus-resteasy:3.1")})

	assert.Equal(t, []any{
		map[string]any{"groupId": "io.quarkus", "artifactId": "quarkus-resteasy", "version": "3.1"},
		map[string]any{"groupId": "io.quarkus", "artifactId": "quarkus-arc", "version": ""},
		map[string]any{"groupId": "io.quarkus", "artifactId": "quarkus-kotlin", "version": ""},
		map[string]any{"groupId": "io.quarkus", "artifactId": "quarkus-arc", "version": ""},
	}, deps[KeyDependencies])
	assert.Equal(t, []any{
		map[string]any{"groupId": "io.quarkus", "artifactId": "quarkus-junit5", "version": ""},
	}, deps[KeyTestDependencies])
}

func TestDependencies_Empty(t *testing.T) {
	deps := Dependencies(nil, "java", nil)
	assert.Equal(t, []any{}, deps[KeyDependencies])
	assert.Equal(t, []any{}, deps[KeyTestDependencies])
}

func TestConvertLegacy(t *testing.T) {
	got := ConvertLegacy(map[string]any{
		"project_groupId":    "org.acme",
		"project_artifactId": "demo",
		"project.version":    "2.0",
		"project_version":    "1.0",
		"custom":             "kept",
	})

	assert.Equal(t, map[string]any{
		"project.group-id":    "org.acme",
		"project.artifact-id": "demo",
		"project.version":     "2.0",
		"custom":              "kept",
	}, got)
}
