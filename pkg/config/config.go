package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the pokeid CLI configuration
type Config struct {
	Format   string `yaml:"format"`
	Ledger   string `yaml:"ledger"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		Format:   FormatText,
		LogLevel: "warn",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Ledger = filepath.Join(home, ".config", "pokeid", "ledger.db")
	}
	return cfg
}

// Load reads config from a file. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", c.Format, FormatText, FormatJSON)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error or off)", c.LogLevel)
	}
	return nil
}
