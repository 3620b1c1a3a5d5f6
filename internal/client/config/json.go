package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/circlegallery/internal/flagx"
	"github.com/dmitrijs2005/circlegallery/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	AccessToken     string         `json:"access_token"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	LogLevel        string         `json:"log_level"`
	LogBackend      string         `json:"log_backend"`
	DefaultCircleID string         `json:"default_circle_id"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys absent from the file leave the current values alone.
// Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
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

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.ServerBaseURL, jc.ServerBaseURL)
	overlay(&cfg.AccessToken, jc.AccessToken)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogBackend, jc.LogBackend)
	overlay(&cfg.DefaultCircleID, jc.DefaultCircleID)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
