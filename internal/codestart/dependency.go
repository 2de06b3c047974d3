package codestart

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

// Dependency is a Maven-style coordinate. Version is optional.
type Dependency struct {
	GroupID    string `yaml:"group-id" json:"groupId"`
	ArtifactID string `yaml:"artifact-id" json:"artifactId"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`
}

// NewDependency builds a dependency from its parts.
func NewDependency(groupID, artifactID, version string) Dependency {
	return Dependency{GroupID: groupID, ArtifactID: artifactID, Version: version}
}

// ParseDependency parses a "group:artifact[:version]" expression.
func ParseDependency(expr string) (Dependency, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Dependency{}, oerrors.Wrap(oerrors.ErrConfiguration,
			fmt.Sprintf("invalid dependency expression %q: expected group:artifact[:version]", expr))
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Dependency{}, oerrors.Wrap(oerrors.ErrConfiguration,
				fmt.Sprintf("invalid dependency expression %q: empty coordinate", expr))
		}
	}

	dep := Dependency{GroupID: parts[0], ArtifactID: parts[1]}
	if len(parts) == 3 {
		dep.Version = parts[2]
	}
	return dep, nil
}

// UnmarshalYAML accepts either an expression scalar or a mapping with
// group-id, artifact-id and version.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		dep, err := ParseDependency(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*d = dep
		return nil
	case yaml.MappingNode:
		type plain Dependency
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		if p.GroupID == "" || p.ArtifactID == "" {
			return oerrors.Wrap(oerrors.ErrConfiguration,
				fmt.Sprintf("line %d: dependency requires group-id and artifact-id", node.Line))
		}
		*d = Dependency(p)
		return nil
	default:
		return oerrors.Wrap(oerrors.ErrConfiguration,
			fmt.Sprintf("line %d: dependency must be a string or a mapping", node.Line))
	}
}

// Key returns "group:artifact".
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID
}

func (d Dependency) String() string {
	if d.Version == "" {
		return d.Key()
	}
	return d.Key() + ":" + d.Version
}

// ToMap exposes the dependency to templates. The version key is always
// present.
func (d Dependency) ToMap() map[string]any {
	return map[string]any{
		"groupId":    d.GroupID,
		"artifactId": d.ArtifactID,
		"version":    d.Version,
	}
}
