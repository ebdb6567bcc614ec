package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// streamID is the fixed second PCG seed word. Together with the caller's seed
// it pins the stream: PCG-DXSM from math/rand/v2, seeded (uint64(seed), streamID).
const streamID = 0x9e3779b97f4a7c15

// newRand returns the stream for seed, drawing a seed from system entropy when
// none is given. The seed actually used is returned so entropy-seeded runs can
// still be replayed.
func newRand(seed *int64) (*rand.Rand, int64) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = entropySeed()
	}
	return rand.New(rand.NewPCG(uint64(s), streamID)), s
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		return int64(rand.Uint64())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// intBetween draws uniformly from [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// distinctPair draws two different indices from [0, n) without replacement.
// n must be at least 2.
func distinctPair(r *rand.Rand, n int) (int, int) {
	a := r.IntN(n)
	b := r.IntN(n - 1)
	if b >= a {
		b++
	}
	return a, b
}
