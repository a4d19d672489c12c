package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// DefaultPath is the database file used when no configuration overrides it.
const DefaultPath = "flatdb.json"

// ErrValNotFound reports a required configuration value that is absent.
var ErrValNotFound = errors.New("flatdb: value not found")

// Config holds the active database file selection. It is resolved once at
// startup and passed explicitly to every operation; there is no process-wide
// mutable pointer.
type Config struct {
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{File: DefaultPath}
}

// Load reads a yaml config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("file", DefaultPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.File == "" {
		return nil, fmt.Errorf("%w: file", ErrValNotFound)
	}
	return &cfg, nil
}
