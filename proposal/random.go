package proposal

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies the randomness of the transitions
// *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a seeded generator; seed 0 draws a seed from the clock
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
