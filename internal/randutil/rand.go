// Package randutil centralises how seeded random sources are constructed so
// that every dice roll in the engine, simulator and tests is reproducible
// from a single int64 seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. A seed of zero
// derives one from the wall clock, for callers that want fresh games.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive maps a base seed and a stream index to an independent seed. The
// simulator uses it to give every game its own reproducible source.
func Derive(seed int64, stream int64) int64 {
	return int64(mix(uint64(seed)) ^ mix(uint64(stream)*goldenRatio64))
}

// mix is the splitmix64 finaliser, used to spread weak seeds across the full
// 64-bit state space before they reach the PCG.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
