package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/hostkit/hostkit/internal/model"
)

// ConfigYAMLRepository loads host configuration from YAML files.
type ConfigYAMLRepository struct {
	fs fs.FS
}

// NewConfigYAMLRepository creates a new YAML config repository.
func NewConfigYAMLRepository(filesystem fs.FS) *ConfigYAMLRepository {
	return &ConfigYAMLRepository{fs: filesystem}
}

// GetConfig loads a host configuration from a YAML file and returns a
// validated domain model.
func (r *ConfigYAMLRepository) GetConfig(ctx context.Context, path string) (model.HostConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.HostConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.HostConfig{}, ctx.Err()
	}

	var cfg HostConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.HostConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.HostConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// HostConfig represents the YAML structure for host configuration.
type HostConfig struct {
	DataDir  string `yaml:"data_dir"`
	DBPath   string `yaml:"db_path"`
	KeepRuns int    `yaml:"keep_runs"`
	LogLevel string `yaml:"log_level"`
}

var validLogLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warning": true,
	"error":   true,
}

func (c HostConfig) validate() error {
	if c.KeepRuns < 0 {
		return fmt.Errorf("keep_runs can't be negative: %w", model.ErrNotValid)
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q: %w", c.LogLevel, model.ErrNotValid)
	}

	return nil
}

func (c HostConfig) toModel() model.HostConfig {
	return model.HostConfig{
		DataDir:  c.DataDir,
		DBPath:   c.DBPath,
		KeepRuns: c.KeepRuns,
		LogLevel: c.LogLevel,
	}
}
