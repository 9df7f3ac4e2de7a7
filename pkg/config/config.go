// Package config loads the demtool shell configuration. None of these
// settings influence decoding results.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel   string `yaml:"log_level"`
	MaxHistory int    `yaml:"max_history"`
	AutoSave   bool   `yaml:"auto_save"`
	NoColor    bool   `yaml:"no_color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		MaxHistory: 20,
		AutoSave:   false,
		NoColor:    false,
	}
}

// Load reads the configuration from path. A missing file is not an
// error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	normalize(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills zero values with their defaults.
func normalize(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxHistory == 0 {
		cfg.MaxHistory = 20
	}
}
