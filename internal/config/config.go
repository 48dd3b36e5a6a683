// Package config holds the tool's constants and the optional
// adavalid.yaml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level adavalid.yaml configuration. Every
// field is optional; command-line flags override it.
type Config struct {
	// InputName is the parameter name bound in generated functions.
	// Defaults to "Input".
	InputName string `yaml:"input_name,omitempty"`

	// OutputDir is where generated files are written. Defaults to the
	// current directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Extensions overrides the recognized source file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
}

// LoadConfig reads and parses the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses configuration data and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig looks for adavalid.yaml in dir. When the file does not
// exist, a default configuration is returned with no error.
func FindConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}

// Default returns the configuration used when no adavalid.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.InputName == "" {
		c.InputName = DefaultInputName
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if len(c.Extensions) == 0 {
		c.Extensions = SourceFileExtensions
	}
}
