package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the dashboard configuration, loaded from the environment.
type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	DataDir         string        `envconfig:"DATA_DIR" default:"."`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
