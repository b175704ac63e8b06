package main

import (
	"context"

	"github.com/fransk/guess-the-number/games"
)

// A game needs to:
// 1. receive lines typed by the player
// 2. decide what each line means
// 3. +/- maintain internal state
// 4. tell the player how the line was judged
type Game interface {
	HandleMsg(ctx context.Context, msg []byte) (games.Verdict, error)
	Won() bool
}
