// Package config loads the colname settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orayew2002/rast-columns/excel"
)

// Config holds colname settings. Command-line flags override file values.
type Config struct {
	// Conjunction joins the last item of a list ("and", "or").
	Conjunction string `yaml:"conjunction"`

	// Sheet is the worksheet written by the headers command.
	Sheet string `yaml:"sheet"`

	// Origin is the 0-based sheet column that holds column index 0.
	Origin int `yaml:"origin"`

	Headers HeadersConfig `yaml:"headers"`
	Logging LoggingConfig `yaml:"logging"`
}

// HeadersConfig configures the default header run.
type HeadersConfig struct {
	Start int64 `yaml:"start"`
	Count int   `yaml:"count"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Conjunction: "and",
		Sheet:       "Sheet1",
		Headers: HeadersConfig{
			Count: 26,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.Conjunction == "" {
		return errors.New("conjunction must not be empty")
	}
	if c.Sheet == "" {
		return errors.New("sheet must not be empty")
	}
	if c.Origin < 0 {
		return fmt.Errorf("origin %d is negative", c.Origin)
	}
	if c.Headers.Count < 0 || c.Headers.Count > excel.MaxSheetColumns {
		return fmt.Errorf("headers.count %d: want 0..%d", c.Headers.Count, excel.MaxSheetColumns)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
