package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the gallery CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the gallery REST API, e.g. http://host/api.
//   - AccessToken: bearer token sent with every request; prompted when empty.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel, LogBackend: see logging.New.
//   - DefaultCircleID: when set, the CLI starts in circle mode.
type Config struct {
	ServerBaseURL   string        `validate:"required,url"`
	AccessToken     string        `validate:"omitempty"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogBackend      string        `validate:"oneof=slog zerolog"`
	DefaultCircleID string        `validate:"omitempty,max=128"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.AccessToken = ""
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.DefaultCircleID = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
