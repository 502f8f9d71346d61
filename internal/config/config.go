package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Addr          string `env:"STACHE_ADDR" envDefault:":8000"`
	GinMode       string `env:"GIN_MODE" envDefault:"debug"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"default-secret-key-change-me"`

	// DBDriver selects the storage backend: sqlite, mysql, or postgres.
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`

	// DBPath is the database file when DBDriver is sqlite.
	DBPath string `env:"DB_PATH" envDefault:"stache.db"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"stache"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"stache"`
	DBName     string `env:"DB_NAME" envDefault:"stache"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
