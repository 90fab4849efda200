package game

import (
	"math/rand/v2"
	"time"
)

// newRand returns a PCG source seeded with seed, or with the clock when seed
// is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
