package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/time/rate"

	"github.com/fransk/guess-the-number/games"
)

var errReadInput = errors.New("failed to read line")

// console plays one game over a pair of text streams.
type console struct {
	in  *bufio.Reader
	out io.Writer

	// guessLimiter controls how quickly guesses are judged.
	//
	// Defaults to no limit.
	guessLimiter *rate.Limiter

	// logf controls where diagnostics are sent.
	// Defaults to log.Printf.
	logf func(f string, v ...interface{})

	// game is the game being played
	game Game
}

// newConsole constructs a console with the defaults.
func newConsole(in io.Reader, out io.Writer, game Game) *console {
	return &console{
		in:           bufio.NewReader(in),
		out:          out,
		guessLimiter: rate.NewLimiter(rate.Inf, 1),
		logf:         log.Printf,
		game:         game,
	}
}

// play prompts for guesses until the game is won.
// It returns an error wrapping errReadInput once the input can no longer be read.
func (c *console) play(ctx context.Context) error {
	c.println("Guess the number!")

	for !c.game.Won() {
		c.println("Please input your guess.")

		line, err := c.readLine()
		if err != nil {
			return err
		}

		if err := c.guessLimiter.Wait(ctx); err != nil {
			return err
		}

		verdict, err := c.game.HandleMsg(ctx, line)
		if err != nil {
			return err
		}
		c.logf("judged %q: %v", line, verdict)
		c.println(verdict.String())
	}

	c.println("Thanks for playing!")
	c.println("Bye!")
	return nil
}

// readLine returns the next line without its terminator.
// A last line with no newline is still returned; end of input after it is an error.
func (c *console) readLine() ([]byte, error) {
	line, err := c.in.ReadBytes('\n')
	if errors.Is(err, io.EOF) && len(line) > 0 {
		return line, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errReadInput, err)
	}
	return line[:len(line)-1], nil
}

func (c *console) println(s string) {
	fmt.Fprintln(c.out, s)
}

var _ Game = (*games.HiLo)(nil)
