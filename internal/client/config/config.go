package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingClientID = errors.New("client id is not configured")
	ErrMissingEndpoint = errors.New("verification endpoint is not configured")
	ErrInvalidEndpoint = errors.New("verification endpoint must be an absolute http(s) URL")
	ErrInvalidTimeout  = errors.New("verification timeout must be positive")
)

// Config holds runtime settings for the onetap CLI.
type Config struct {
	ClientID      string
	Endpoint      string
	VerifyTimeout time.Duration
	StorePath     string
	LogLevel      string
	Once          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VerifyTimeout = 15 * time.Second
	c.StorePath = "keyring.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// Validate reports configuration errors. It does not contact the endpoint.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return ErrMissingClientID
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrMissingEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidEndpoint
	}
	if c.VerifyTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
