// Package config loads the optional config file holding host defaults.
// Every value can be overridden by a flag; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the host collaborator flags.
type Config struct {
	Host      string `yaml:"host"`
	File      string `yaml:"file"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xcuidump", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields a zero Config.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
