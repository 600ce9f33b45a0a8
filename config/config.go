// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for the momo binary. Command-line flags override
// these values.
type Config struct {
	LevelsDir string `env:"MOMO_LEVELS_DIR" envDefault:"levels"`
	LogLevel  string `env:"MOMO_LOG_LEVEL" envDefault:"info"`
	Plain     bool   `env:"MOMO_PLAIN"`
	Trace     bool   `env:"MOMO_TRACE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("parse env: MOMO_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
