package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds every process-wide setting. It is parsed once in main and
// passed explicitly to the components that need it.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:"host=postgres user=postgres password=postgres dbname=acne port=5432 sslmode=disable"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	ClassifierAddr  string        `env:"CLASSIFIER_ADDR" envDefault:"classifier:50051"`
	StorageRoot     string        `env:"STORAGE_ROOT" envDefault:"uploads"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"../frontend/build"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
