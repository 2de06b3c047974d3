package projectdata

// legacyKeys maps flat keys accepted by older project generators to their
// dotted equivalents.
var legacyKeys = map[string]string{
	"bom_groupId":        "quarkus.platform.group-id",
	"bom_artifactId":     "quarkus.platform.artifact-id",
	"bom_version":        "quarkus.platform.version",
	"project_groupId":    "project.group-id",
	"project_artifactId": "project.artifact-id",
	"project_version":    "project.version",
	"plugin_groupId":     "quarkus.plugin.group-id",
	"plugin_artifactId":  "quarkus.plugin.artifact-id",
	"plugin_version":     "quarkus.plugin.version",
	"quarkus_version":    "quarkus.version",
	"package_name":       "project.package-name",
	"java_version":       "java.version",
	"kotlin_version":     "kotlin.version",
}

// ConvertLegacy returns a copy of data with legacy flat keys renamed to
// their dotted form. Other keys are kept as they are. When both forms are
// present the dotted key wins.
func ConvertLegacy(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if _, legacy := legacyKeys[k]; !legacy {
			out[k] = v
		}
	}
	for k, v := range data {
		modern, legacy := legacyKeys[k]
		if !legacy {
			continue
		}
		if _, exists := out[modern]; !exists {
			out[modern] = v
		}
	}
	return out
}
