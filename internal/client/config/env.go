package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ClientID      string        `env:"ONETAP_CLIENT_ID"`
	Endpoint      string        `env:"ONETAP_ENDPOINT"`
	VerifyTimeout time.Duration `env:"ONETAP_VERIFY_TIMEOUT"`
	StorePath     string        `env:"ONETAP_STORE_PATH"`
	LogLevel      string        `env:"ONETAP_LOG_LEVEL"`
}

// parseEnv overlays cfg with the ONETAP_* variables that are set.
// Panics when a variable cannot be parsed (e.g. a malformed duration).
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}

	if ec.ClientID != "" {
		cfg.ClientID = ec.ClientID
	}
	if ec.Endpoint != "" {
		cfg.Endpoint = ec.Endpoint
	}
	if ec.VerifyTimeout != 0 {
		cfg.VerifyTimeout = ec.VerifyTimeout
	}
	if ec.StorePath != "" {
		cfg.StorePath = ec.StorePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
