package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string        `env:"FIRE_ADDR"           envDefault:":8080"`
	LogLevel     string        `env:"FIRE_LOG_LEVEL"      envDefault:"info"`
	GridWorkers  int           `env:"FIRE_GRID_WORKERS"   envDefault:"0"`
	ReadTimeout  time.Duration `env:"FIRE_READ_TIMEOUT"   envDefault:"10s"`
	WriteTimeout time.Duration `env:"FIRE_WRITE_TIMEOUT"  envDefault:"60s"`
	MaxGridCells int           `env:"FIRE_MAX_GRID_CELLS" envDefault:"10000"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.MaxGridCells <= 0 {
		return ServerConfig{}, fmt.Errorf("%w: FIRE_MAX_GRID_CELLS must be positive", ErrInvalidConfig)
	}
	return cfg, nil
}
