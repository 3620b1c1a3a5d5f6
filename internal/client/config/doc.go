// Package config loads runtime configuration for the gallery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: GALLERY_* variables, after loading a dotenv file named
//     with -e or -env (or ./.env when present).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the gallery API
//	-t int          request timeout (seconds)
//	-l string       log level
//	-circle string  circle to open on start
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://gallery.example.com/api",
//	  "request_timeout": "10s",
//	  "log_level": "debug",
//	  "log_backend": "zerolog",
//	  "default_circle_id": "c1"
//	}
//
// The access token is deliberately not a flag; pass it through the
// environment, the JSON file, or the interactive prompt.
package config
