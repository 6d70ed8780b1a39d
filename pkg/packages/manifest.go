package packages

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// baselineManifest contains the packages installed on every fresh VM.
// Users extend or disable entries via the provisioning config file.
//
//go:embed baseline.yaml
var baselineManifest []byte

// manifest is the YAML document shape.
type manifest struct {
	Packages []Package `yaml:"packages"`
}

// LoadBaseline parses the embedded baseline manifest into a registry.
func LoadBaseline() (*Registry, error) {
	return parseManifest(baselineManifest)
}

// LoadFile parses a manifest file into a registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return parseManifest(data)
}

func parseManifest(data []byte) (*Registry, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	registry := NewRegistry()
	for _, pkg := range m.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("manifest contains a package with no name")
		}
		registry.Add(pkg)
	}
	return registry, nil
}

// Apply adjusts a registry with per-run extras and skips. Extras are added
// as default-enabled CLI tools if not already present; skips flip Default
// off without removing the entry, so listings still show them.
func Apply(registry *Registry, extras, skips []string) {
	for _, name := range extras {
		if registry.Get(name) == nil {
			registry.Add(Package{
				Name:     name,
				Category: CategoryCLI,
				Default:  true,
			})
		}
	}

	for _, name := range skips {
		if pkg := registry.Get(name); pkg != nil {
			pkg.Default = false
			registry.Add(*pkg)
		}
	}
}
