package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/circlegallery/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       base URL of the gallery API
//	-t int          request timeout in seconds
//	-l string       log level
//	-circle string  start in circle mode for this circle
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not make parsing fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-circle", "--circle"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the gallery API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.DefaultCircleID, "circle", cfg.DefaultCircleID, "circle to open on start")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
