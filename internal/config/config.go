// Package config loads the optional YAML run configuration.
//
// No config file is searched for implicitly: the CLI only reads one when
// --config is given, and flags always override config values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config mirrors the CLI flags.
type Config struct {
	Target string `yaml:"target"` // site output directory
	Entry  string `yaml:"entry"`  // entry HTML filename
	DryRun bool   `yaml:"dryRun"` // report without writing or deleting
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}
