package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/chromium-export/config.yaml"

// PageSize is the number of visit records written per output file.
const PageSize = 1000

// Config holds all chromium-export configuration.
type Config struct {
	Export   ExportConfig   `yaml:"export"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ExportConfig struct {
	Days      int    `yaml:"days"`
	OutputDir string `yaml:"output_dir"`
	PageSize  int    `yaml:"page_size"`
}

type SnapshotConfig struct {
	TempDir string `yaml:"temp_dir"`
	Prefix  string `yaml:"prefix"`
}

type LoggingConfig struct {
	Color bool `yaml:"color"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read, contains invalid YAML,
// or holds values that fail validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path. An empty path or a file that
// does not exist yields the defaults; any other failure is returned.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(ResolvePath(path)); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate checks that the configuration can drive an export.
func (c *Config) Validate() error {
	// The import format caps each file at 1000 records.
	if c.Export.PageSize != PageSize {
		return fmt.Errorf("export.page_size must be %d, got %d", PageSize, c.Export.PageSize)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir must not be empty")
	}
	if c.Snapshot.Prefix == "" {
		return fmt.Errorf("snapshot.prefix must not be empty")
	}
	return nil
}

// SnapshotDir returns the directory snapshot copies are written to.
func (c *Config) SnapshotDir() string {
	if c.Snapshot.TempDir == "" {
		return os.TempDir()
	}
	return ResolvePath(c.Snapshot.TempDir)
}
