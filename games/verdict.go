package games

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParseGuess for lines that are not a guess.
var ErrNotANumber = errors.New("not a number")

// Verdict is what the player is told about one line of input.
type Verdict int

const (
	Invalid Verdict = iota
	TooSmall
	TooBig
	Correct
)

// String returns the line shown to the player.
func (v Verdict) String() string {
	switch v {
	case Invalid:
		return "Please type a number!"
	case TooSmall:
		return "Too small!"
	case TooBig:
		return "Too big!"
	case Correct:
		return "You win!"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// ParseGuess reads an unsigned 32-bit decimal out of a line of input.
// Surrounding whitespace and a single leading '+' are allowed.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(line))
	}
	return uint32(n), nil
}

// Classify compares a guess against the secret.
func Classify(guess, secret uint32) Verdict {
	switch cmp.Compare(guess, secret) {
	case -1:
		return TooSmall
	case 1:
		return TooBig
	default:
		return Correct
	}
}
