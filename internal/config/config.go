// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	qerrors "quantity-measurement/internal/errors"
	"quantity-measurement/internal/logging"
)

// MaxPrecision bounds the number of decimal places used for display.
const MaxPrecision = 15

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// Precision is the number of decimal places shown for values
	Precision int32 `json:"precision"`

	// NoColor disables ANSI colors in CLI output
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			Precision:     6,
			NoColor:       false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.quantity-measurement.json. It fails when the
// home directory cannot be determined.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", qerrors.Wrap(qerrors.TypeConfig, "cannot locate default config file", err)
	}
	return filepath.Join(homeDir, ".quantity-measurement.json"), nil
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, qerrors.Wrapf(qerrors.TypeConfig, err, "invalid config file %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return qerrors.Newf(qerrors.TypeConfig, "unknown output format: %s", c.Output.DefaultFormat).
			WithContext("format", c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return qerrors.Config("precision out of range").
			WithContext("precision", c.Output.Precision)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
