// Package config provides configuration loading and management for the
// resichem command-line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scale selects which scale of the scalar feature tables lookups use.
type Scale string

const (
	// ScaleRaw reports values as published (Angstroms, amu, pH units).
	ScaleRaw Scale = "raw"
	// ScaleStandardized reports zero-mean/unit-variance values for the
	// scalar tables that have standardized companions.
	ScaleStandardized Scale = "standardized"
)

// Config represents the complete resichem configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Lookup LookupConfig `yaml:"lookup"`
}

// OutputConfig configures how results are rendered
type OutputConfig struct {
	// Format is the output format: "text" or "json"
	Format string `yaml:"format"`
	// Precision is the number of significant digits for floating-point
	// values (0 = shortest exact representation)
	Precision int `yaml:"precision"`
}

// LookupConfig configures lookup behavior
type LookupConfig struct {
	// Scale selects raw or standardized values for scalar tables
	Scale Scale `yaml:"scale"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "text",
			Precision: 0,
		},
		Lookup: LookupConfig{
			Scale: ScaleRaw,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between 0 and 17, got %d", c.Output.Precision)
	}
	switch c.Lookup.Scale {
	case ScaleRaw, ScaleStandardized:
	default:
		return fmt.Errorf("lookup.scale must be %q or %q, got %q", ScaleRaw, ScaleStandardized, c.Lookup.Scale)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values). Zero-valued fields are treated as unset: a layer
// cannot force precision back to 0 over an earlier nonzero value, since
// 0 is indistinguishable from an absent key after unmarshalling.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Precision != 0 {
		c.Output.Precision = other.Output.Precision
	}
	if other.Lookup.Scale != "" {
		c.Lookup.Scale = other.Lookup.Scale
	}
}
