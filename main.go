package main

import (
	"context"
	"flag"
	"os"

	"github.com/fransk/guess-the-number/games"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.Verbose)

	game := games.NewHilo()
	c := newConsole(os.Stdin, os.Stdout, game)
	c.guessLimiter.SetLimit(cfg.guessLimit())
	c.logf = logger.Printf

	if err := c.play(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("game aborted")
	}
	logger.Debug().Int("guesses", game.Guesses()).Msg("game won")
}
