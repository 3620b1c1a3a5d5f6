package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		return &Config{ServerBaseURL: "http://x/api", RequestTimeout: 1500 * time.Millisecond, LogLevel: "info", LogBackend: "slog"}
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://g.example/api", "-t", "10", "-l", "debug", "-circle", "c1"},
			expected: &Config{ServerBaseURL: "https://g.example/api", RequestTimeout: 10 * time.Second,
				LogLevel: "debug", LogBackend: "slog", DefaultCircleID: "c1"},
		},
		{
			name:     "unset timeout keeps sub-second value",
			args:     []string{"cmd", "-l", "warn"},
			expected: &Config{ServerBaseURL: "http://x/api", RequestTimeout: 1500 * time.Millisecond, LogLevel: "warn", LogBackend: "slog"},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"cmd", "-c", "cfg.json", "-e", ".env", "-circle=c2"},
			expected: &Config{ServerBaseURL: "http://x/api", RequestTimeout: 1500 * time.Millisecond, LogLevel: "info", LogBackend: "slog", DefaultCircleID: "c2"},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := base()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
