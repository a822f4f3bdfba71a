package project

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// manifestDTO mirrors the structure of the stanza.yaml project manifest.
type manifestDTO struct {
	Name       string            `yaml:"name"`
	Version    string            `yaml:"version"`
	Frameworks []frameworkDTO    `yaml:"frameworks"`
	Central    centralDTO        `yaml:"centralVersions"`
	Runtimes   runtimesDTO       `yaml:"runtimes"`
	Properties map[string]string `yaml:"properties"`
}

// frameworkDTO is one target framework block. Frameworks are a list, not a
// map, so declaration order survives the round trip.
type frameworkDTO struct {
	Name            string                   `yaml:"name"`
	Dependencies    map[string]dependencyDTO `yaml:"dependencies"`
	PackageFallback []string                 `yaml:"packageFallback"`
	AssetFallback   []string                 `yaml:"assetFallback"`
}

// centralDTO is the central version management block. Packages stays a raw
// node so document order is preserved: duplicate ids collapse with the last
// entry winning, which must be deterministic for a given file.
type centralDTO struct {
	Enabled  bool      `yaml:"enabled"`
	Packages yaml.Node `yaml:"packages"`
}

// pairs flattens the packages mapping into ordered id/version pairs.
func (c *centralDTO) pairs() ([][2]string, error) {
	if c.Packages.Kind == 0 || c.Packages.IsZero() {
		return nil, nil
	}
	if c.Packages.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("centralVersions.packages must be a mapping, got yaml kind %d", c.Packages.Kind)
	}
	out := make([][2]string, 0, len(c.Packages.Content)/2)
	for i := 0; i+1 < len(c.Packages.Content); i += 2 {
		out = append(out, [2]string{
			c.Packages.Content[i].Value,
			c.Packages.Content[i+1].Value,
		})
	}
	return out, nil
}

// runtimesDTO carries the runtime graph inputs.
type runtimesDTO struct {
	Identifiers []string `yaml:"identifiers"`
	Supports    []string `yaml:"supports"`
}

// dependencyDTO accepts either a bare version string or a mapping with asset
// selection fields:
//
//	PkgA: "1.0.0"
//	PkgB:
//	  version: "[1.0,2.0)"
//	  include: compile;runtime
type dependencyDTO struct {
	Version        string `yaml:"version"`
	Include        string `yaml:"include"`
	Exclude        string `yaml:"exclude"`
	SuppressParent string `yaml:"suppressParent"`
}

// UnmarshalYAML implements yaml.Unmarshaler for the two accepted shapes.
func (d *dependencyDTO) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&d.Version)
	case yaml.MappingNode:
		type plain dependencyDTO
		return value.Decode((*plain)(d))
	default:
		return fmt.Errorf("dependency must be a version string or a mapping, got yaml kind %d", value.Kind)
	}
}
