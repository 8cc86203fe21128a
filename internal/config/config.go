package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server's environment-driven configuration.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	// CatalogPath points at a JSON card catalog. Empty means the built-in
	// catalog.
	CatalogPath string `env:"CATALOG_PATH"`

	// HistoryMode selects the session history backend: memory (default),
	// sqlite, or anything else for postgres.
	HistoryMode        string `env:"HISTORY_MODE" envDefault:"memory"`
	HistorySQLitePath  string `env:"HISTORY_SQLITE_PATH"`
	HistoryDatabaseDSN string `env:"HISTORY_DATABASE_DSN"`

	// ReconnectGrace is how long a dropped player keeps their seat.
	ReconnectGrace time.Duration `env:"RECONNECT_GRACE" envDefault:"30s"`

	// Seed fixes the session RNG for reproducible runs. Zero means
	// time-seeded.
	Seed int64 `env:"SESSION_SEED" envDefault:"0"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("empty listen address")
	}
	if c.ReconnectGrace <= 0 {
		return fmt.Errorf("reconnect grace must be positive, got %s", c.ReconnectGrace)
	}
	return nil
}
