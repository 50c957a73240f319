package game

import (
	"crypto/sha256"

	"lukechampine.com/frand"
)

// Rand is the single source of randomness for a game and its automated
// players. *frand.RNG satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a fast CSPRNG. An empty seed gives a randomly seeded
// generator; any other seed gives a reproducible stream.
func NewRand(seed string) Rand {
	if seed == "" {
		return frand.New()
	}
	key := sha256.Sum256([]byte(seed))
	return frand.NewCustom(key[:], 1024, 12)
}
