// Package config loads service configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/ocarena/oc-api/internal/errors"
)

// Config is the service configuration. Environment variables are the source
// of truth; cmd/server flags override the ones that matter locally.
type Config struct {
	// HTTPPort is the port the JSON API listens on
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// RedisAddr is the host:port of the Redis store
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is optional
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// ShutdownTimeout bounds the graceful drain, in seconds
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse environment")
	}
	return cfg, nil
}
