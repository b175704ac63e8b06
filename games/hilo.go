package games

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// ErrGameOver is returned when a guess reaches a game that was already won.
var ErrGameOver = errors.New("game is over")

const (
	stateAwaitingGuess = "awaiting_guess"
	stateWon           = "won"

	eventWin = "win"
)

// HiLo is a Game.
// The game chooses a secret integer.
// The player guesses until they guess the integer.
// Each guess they are told whether it was too small or too big.
type HiLo struct {
	secret  uint32
	guesses int
	state   *fsm.FSM
}

// initialize a game of HiLo with a random secret
func NewHilo() *HiLo {
	return NewHiloWithSecret(NewSecret(nil))
}

// NewHiloWithSecret starts a game whose secret is already known.
func NewHiloWithSecret(secret uint32) *HiLo {
	return &HiLo{
		secret: secret,
		state: fsm.NewFSM(
			stateAwaitingGuess,
			fsm.Events{
				{Name: eventWin, Src: []string{stateAwaitingGuess}, Dst: stateWon},
			},
			fsm.Callbacks{},
		),
	}
}

// HandleMsg judges one line typed by the player.
// Lines that do not parse are reported as Invalid and leave the game as it was.
func (h *HiLo) HandleMsg(ctx context.Context, msg []byte) (Verdict, error) {
	if h.Won() {
		return Invalid, ErrGameOver
	}

	guess, err := ParseGuess(string(msg))
	if err != nil {
		return Invalid, nil
	}
	h.guesses++

	v := Classify(guess, h.secret)
	if v == Correct {
		if err := h.state.Event(ctx, eventWin); err != nil {
			return Invalid, fmt.Errorf("hilo: %w", err)
		}
	}
	return v, nil
}

// Won reports whether the secret has been guessed.
func (h *HiLo) Won() bool {
	return h.state.Is(stateWon)
}

// Guesses is the number of numeric guesses judged so far.
func (h *HiLo) Guesses() int {
	return h.guesses
}
