// Package config provides configuration loading for the TTL cleaner.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/janschachtschabel/skohub-ttl-cleaner/pipeline"
)

// Config is the complete cleaner configuration. Command-line flags override
// anything loaded from file.
type Config struct {
	Cleaner    CleanerConfig    `yaml:"cleaner"`
	Validation ValidationConfig `yaml:"validation"`
	Reports    ReportsConfig    `yaml:"reports"`
}

// CleanerConfig configures the cleaning stages.
type CleanerConfig struct {
	// ChunkSize is the concepts-per-chunk bound in memory-efficient mode.
	ChunkSize int `yaml:"chunk_size"`
	// MemoryEfficient enables chunked processing for large files.
	MemoryEfficient bool `yaml:"memory_efficient"`
	// AutofixBroader inserts missing broader links from code prefixes.
	AutofixBroader bool `yaml:"autofix_broader"`
}

// ValidationConfig configures the integrity checks.
type ValidationConfig struct {
	// Enabled runs the validation engine after cleaning.
	Enabled bool `yaml:"enabled"`
	// SKOSXL enables extended-label validation.
	SKOSXL bool `yaml:"skos_xl"`
	// WarnMissingNarrower reports info findings for missing reverse links.
	WarnMissingNarrower bool `yaml:"warn_missing_narrower"`
}

// ReportsConfig configures report-file generation.
type ReportsConfig struct {
	// Enabled writes the change-log, validation and full report files next
	// to the cleaned output.
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a Config with the tool defaults.
func DefaultConfig() *Config {
	return &Config{
		Cleaner:    CleanerConfig{ChunkSize: 1000},
		Validation: ValidationConfig{Enabled: true},
		Reports:    ReportsConfig{Enabled: true},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Cleaner.ChunkSize <= 0 {
		return fmt.Errorf("cleaner.chunk_size must be positive, got %d", c.Cleaner.ChunkSize)
	}
	return nil
}

// Options maps the configuration onto pipeline options.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		ChunkSize:           c.Cleaner.ChunkSize,
		EnableValidation:    c.Validation.Enabled,
		MemoryEfficient:     c.Cleaner.MemoryEfficient,
		EnableSKOSXL:        c.Validation.SKOSXL,
		AutofixBroader:      c.Cleaner.AutofixBroader,
		WarnMissingNarrower: c.Validation.WarnMissingNarrower,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults,
// so absent keys keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
