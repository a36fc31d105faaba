package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Endpoint validation errors
var (
	ErrInvalidScheme = errors.New("URL must start with http:// or https://")
	ErrMissingHost   = errors.New("URL must include a host")
)

// Env holds values read from the process environment
type Env struct {
	EndpointURL  string        `env:"ITEMLIST_ENDPOINT_URL"`
	FetchTimeout time.Duration `env:"ITEMLIST_FETCH_TIMEOUT"`
	LogLevel     string        `env:"ITEMLIST_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads the environment overrides
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.EndpointURL != "" {
		if err := ValidateEndpointURL(cfg.EndpointURL); err != nil {
			return Env{}, fmt.Errorf("ITEMLIST_ENDPOINT_URL: %w", err)
		}
	}
	if cfg.FetchTimeout < 0 {
		return Env{}, fmt.Errorf("ITEMLIST_FETCH_TIMEOUT must not be negative: %s", cfg.FetchTimeout)
	}
	return cfg, nil
}
