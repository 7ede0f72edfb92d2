// Package config loads svcdash settings from the environment.
// Command-line flags override these values; see cmd/svcdash.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings. The dashboard host is intentionally
// absent: it always comes from the request or the --host flag.
type Config struct {
	Addr          string `env:"SVCDASH_ADDR" envDefault:"127.0.0.1:8088"`
	DashboardPath string `env:"SVCDASH_DASHBOARD"`
	ServicesFile  string `env:"SVCDASH_SERVICES"`
	Watch         bool   `env:"SVCDASH_WATCH" envDefault:"true"`
	LogLevel      string `env:"SVCDASH_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"SVCDASH_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config populated from the environment and defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
