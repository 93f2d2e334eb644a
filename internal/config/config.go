package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server process configuration, read once at startup
type Config struct {
	// Host and Port form the listen address
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`

	// SigningKey signs bearer tokens. Changing it invalidates every
	// issued token and logs all players out, so it stays fixed.
	SigningKey string `env:"SIGNING_KEY" envDefault:"arcade_super_secret_key_forever"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
