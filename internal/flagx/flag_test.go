package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-e", "http://localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "double dash with equals",
			args:         []string{"--config=alt.json", "-e", "http://localhost"},
			allowedFlags: []string{"-config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "double dash separate value",
			args:         []string{"--id", "client-1"},
			allowedFlags: []string{"-id"},
			want:         []string{"--id", "client-1"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-once"},
			allowedFlags: []string{"-once"},
			want:         []string{"-once"},
		},
		{
			name:         "next dash-prefixed token is not a value",
			args:         []string{"-once", "-e", "http://x"},
			allowedFlags: []string{"-once", "-e"},
			want:         []string{"-once", "-e", "http://x"},
		},
		{
			name:         "stops at terminator",
			args:         []string{"-e", "http://x", "--", "-id", "ignored"},
			allowedFlags: []string{"-e", "-id"},
			want:         []string{"-e", "http://x"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config among other flags", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigFile([]string{"-e", "http://x", "-config", "/path/long.json", "-once"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, ConfigFile([]string{"-e", "http://x"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigFile([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}
