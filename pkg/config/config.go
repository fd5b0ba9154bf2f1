// Package config provides configuration management for the gofile CLI. It
// handles loading and validating application settings from YAML configuration
// files, with sensible defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/gofile/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Token is the gofile account token. The GOFILE_TOKEN environment
	// variable takes precedence over this value.
	Token string `yaml:"token,omitempty"`

	// OutputDir is where downloaded files are placed. Defaults to the
	// current working directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// HooksDir holds Tengo lifecycle scripts, one per event.
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// APIURL overrides the production API endpoint. Mainly for testing.
	APIURL string `yaml:"api_url,omitempty"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests. Zero would
	// mean no timeout at all; an hour leaves room for large transfers.
	DefaultHTTPTimeout = time.Hour

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout: DefaultHTTPTimeout,
			LogLevel:    DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration rather than an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	data, err := os.ReadFile(absPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfigPath, "%s: %v", absPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	if cfg.Settings.HTTPTimeout <= 0 {
		cfg.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.Settings.LogLevel == "" {
		cfg.Settings.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

// GetDefaultConfigPath returns the platform default config file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config dir: %w", err)
	}
	return filepath.Join(configDir, "gofile", "config.yaml"), nil
}
