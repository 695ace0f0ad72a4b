package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals a module manifest.
func Parse(data []byte) (*Module, error) {
	var m Module
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing module manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and parses the manifest at path.
func ParseFile(path string) (*Module, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
