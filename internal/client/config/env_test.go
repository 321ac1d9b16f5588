package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("ONETAP_CLIENT_ID", "env-client")
		t.Setenv("ONETAP_VERIFY_TIMEOUT", "750ms")
		t.Setenv("ONETAP_STORE_PATH", "/var/lib/onetap.db")

		cfg := &Config{Endpoint: "http://keep"}
		parseEnv(cfg)

		assert.Equal(t, "env-client", cfg.ClientID)
		assert.Equal(t, "http://keep", cfg.Endpoint)
		assert.Equal(t, 750*time.Millisecond, cfg.VerifyTimeout)
		assert.Equal(t, "/var/lib/onetap.db", cfg.StorePath)
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		t.Setenv("ONETAP_VERIFY_TIMEOUT", "soon")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
