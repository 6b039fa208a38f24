package util

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings and flags.
type Config struct {
	DSN         string `env:"PADDOCK_DSN"`
	AgentURL    string `env:"PADDOCK_AGENT_URL" envDefault:"http://127.0.0.1:8724"`
	CatalogPath string `env:"PADDOCK_CATALOG" envDefault:"data/events.json"`
	Theme       string `env:"PADDOCK_THEME" envDefault:"catppuccin"`
}

// FromEnv populates a Config from environment variables. Flags may still
// override individual fields afterwards.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
