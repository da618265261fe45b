package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirrors the optional YAML defaults file. Only fields that make
// sense as standing preferences are exposed; roots and the action always
// come from the command line.
type Defaults struct {
	Strategy   string   `yaml:"strategy,omitempty"`
	Algorithm  string   `yaml:"algorithm,omitempty"`
	Threshold  *float64 `yaml:"threshold,omitempty"`
	MinSize    string   `yaml:"min_size,omitempty"`
	MaxSize    string   `yaml:"max_size,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
	Workers    *int     `yaml:"workers,omitempty"`
	SortKey    string   `yaml:"sort,omitempty"`
}

// LoadDefaults reads a YAML defaults file. A missing path is not an error
// so callers can probe well-known locations.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}

	defaults := &Defaults{}
	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}

	return defaults, nil
}
