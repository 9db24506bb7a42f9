// Package config loads runtime configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings.
type Config struct {
	BaseURL   string        `envconfig:"HLTV_BASE_URL" default:"https://www.hltv.org"`
	Timeout   time.Duration `envconfig:"HLTV_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"HLTV_USER_AGENT" default:"counterscrape/1.0"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

// New loads configuration from a .env file (if present) and the
// environment. A missing .env file is not an error.
func New() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
