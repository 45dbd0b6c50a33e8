package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level pennybook.yaml configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Import   ImportConfig   `yaml:"import"`
}

// DatabaseConfig locates the ledger database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DefaultsConfig holds fallbacks applied when a command omits a flag.
type DefaultsConfig struct {
	Currency  string `yaml:"currency"`
	AccountID int64  `yaml:"account_id,omitempty"`
}

// ImportConfig tunes the statement import commands.
type ImportConfig struct {
	PreviewRows int `yaml:"preview_rows"`
}

// Load reads a pennybook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger rooted
// at dir.
func Default(dir string) *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "data", "pennybook.db"),
		},
		Defaults: DefaultsConfig{
			Currency: "CAD",
		},
		Import: ImportConfig{
			PreviewRows: 500,
		},
	}
}
