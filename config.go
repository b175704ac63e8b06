package main

import (
	"flag"
	"time"

	"golang.org/x/time/rate"
)

type config struct {
	// Verbose turns on debug diagnostics on stderr.
	Verbose bool
	// Throttle is the minimum delay between judged guesses. Zero means no limit.
	Throttle time.Duration
}

// parseConfig reads the command line into a config.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.BoolVar(&cfg.Verbose, "v", false, "Log each judged guess to stderr")
	fs.DurationVar(&cfg.Throttle, "throttle", 0, "Minimum delay between judged guesses (0 disables)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// guessLimit converts the throttle into a limiter rate.
func (cfg config) guessLimit() rate.Limit {
	if cfg.Throttle <= 0 {
		return rate.Inf
	}
	return rate.Every(cfg.Throttle)
}
