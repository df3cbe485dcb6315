package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile overlays the YAML file at path onto the configuration.
// Keys missing from the file keep their current values. ${VAR}
// references are expanded from the environment before parsing.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Field: "config", Message: fmt.Sprintf("failed to read config file %s: %v", path, err)}
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return &ConfigError{Field: path, Message: fmt.Sprintf("failed to parse config file: %v", err)}
	}

	return nil
}

// MarshalYAMLBytes renders the configuration as a YAML document
func (c *Config) MarshalYAMLBytes() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
