// Package config handles configuration loading and management for indental.
//
// It provides functionality for:
//   - Loading configuration from .indental.yaml or .indental.config.json files
//   - Default configuration values
//   - Merging file configuration with command-line overrides
package config
