package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/onetap/internal/flagx"
	"github.com/dmitrijs2005/onetap/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so "15s" and integer nanoseconds are both accepted.
type JsonConfig struct {
	ClientID      string         `json:"client_id"`
	Endpoint      string         `json:"endpoint"`
	VerifyTimeout timex.Duration `json:"verify_timeout"`
	StorePath     string         `json:"store_path"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Keys absent from the file leave cfg untouched. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.Endpoint != "" {
		cfg.Endpoint = jc.Endpoint
	}
	if jc.VerifyTimeout.Duration != 0 {
		cfg.VerifyTimeout = jc.VerifyTimeout.Duration
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
