package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the indental configuration
type Config struct {
	Output          string   `yaml:"output,omitempty" json:"output,omitempty"` // json, yaml or tree
	Indent          int      `yaml:"indent,omitempty" json:"indent,omitempty"` // pretty-print width
	NoColor         *bool    `yaml:"noColor,omitempty" json:"noColor,omitempty"`
	Quiet           *bool    `yaml:"quiet,omitempty" json:"quiet,omitempty"`
	ReportDangling  *bool    `yaml:"reportDangling,omitempty" json:"reportDangling,omitempty"`
	Extensions      []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	TableExtensions []string `yaml:"tableExtensions,omitempty" json:"tableExtensions,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetQuiet returns the quiet setting, defaulting to false
func (c *Config) GetQuiet() bool {
	return getBool(c.Quiet, false)
}

// GetReportDangling returns the dangling line report setting, defaulting to false
func (c *Config) GetReportDangling() bool {
	return getBool(c.ReportDangling, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".indental.yaml",
	".indental.yml",
	"indental.yaml",
	".indental.config.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file. JSON files
// are read with the YAML decoder.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks field values that the CLI cannot recover from.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "json", "yaml", "tree":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Output != "" {
		result.Output = other.Output
	}
	if other.Indent > 0 {
		result.Indent = other.Indent
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Quiet != nil {
		result.Quiet = other.Quiet
	}
	if other.ReportDangling != nil {
		result.ReportDangling = other.ReportDangling
	}

	if len(other.Extensions) > 0 {
		result.Extensions = other.Extensions
	}
	if len(other.TableExtensions) > 0 {
		result.TableExtensions = other.TableExtensions
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
