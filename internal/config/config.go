package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/otifyhq/console/internal/schema"
)

// Config holds console configuration stored at ~/.otify/config.
type Config struct {
	DefaultSection string `yaml:"default_section"`
	VimKeys        bool   `yaml:"vim_keys"`
	LogFile        string `yaml:"log_file,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists. The
// console opens on the services section, matching its original startup
// behavior.
func Default() *Config {
	return &Config{DefaultSection: "service"}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".otify", "config")
}

// Load reads and parses the config file. A missing file is not an
// error; the defaults apply.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// The config file is user-edited input; a tag outside the entity
	// catalog falls back rather than crashing downstream lookups.
	if _, err := schema.Get(cfg.DefaultSection); err != nil {
		cfg.DefaultSection = "service"
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
