package entropy

import "math/rand"

// Generator is the local pseudo-random source used for fallbacks and picks
type Generator interface {
	// IntBetween returns an integer in [min, max] inclusive
	IntBetween(min, max int) int
}

// MathRandGenerator draws from math/rand
type MathRandGenerator struct{}

// IntBetween returns a random integer between min and max (inclusive)
func (MathRandGenerator) IntBetween(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}
