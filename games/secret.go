package games

import "math/rand/v2"

// The secret is always drawn from [MinSecret, MaxSecret].
const (
	MinSecret uint32 = 1
	MaxSecret uint32 = 100
)

// NewSecret draws a secret uniformly from [MinSecret, MaxSecret].
// A nil r uses the process-wide generator.
func NewSecret(r *rand.Rand) uint32 {
	n := MaxSecret - MinSecret + 1
	if r == nil {
		return MinSecret + rand.Uint32N(n)
	}
	return MinSecret + r.Uint32N(n)
}
