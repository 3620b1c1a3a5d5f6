package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/circlegallery/internal/flagx"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvServerURL      = "GALLERY_SERVER_URL"
	EnvAccessToken    = "GALLERY_ACCESS_TOKEN"
	EnvRequestTimeout = "GALLERY_REQUEST_TIMEOUT"
	EnvLogLevel       = "GALLERY_LOG_LEVEL"
	EnvLogBackend     = "GALLERY_LOG_BACKEND"
	EnvCircleID       = "GALLERY_CIRCLE_ID"
)

// parseEnv loads a dotenv file into the process environment and overlays
// Config with the GALLERY_* variables. Variables already set in the
// environment win over the file.
//
// The file is the one named by -e/-env, or ./.env when it exists. An
// explicitly named file that cannot be read panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFile(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(defaultEnvFile); err == nil {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			panic(err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		panic(err)
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvServerURL, &cfg.ServerBaseURL)
	set(EnvAccessToken, &cfg.AccessToken)
	set(EnvLogLevel, &cfg.LogLevel)
	set(EnvLogBackend, &cfg.LogBackend)
	set(EnvCircleID, &cfg.DefaultCircleID)

	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

// parseTimeout accepts a Go duration ("10s") or a whole number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", v)
	}
	return time.Duration(secs) * time.Second, nil
}
