package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Read reads the YAML configuration at the given location.
// An empty location yields the default configuration.
func Read(file string) (*Config, error) {
	if file == "" {
		return &Config{}, nil
	}

	fileBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", file, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML in file '%s': %w", file, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in file '%s': %w", file, err)
	}

	return config, nil
}
