// Package randutil centralises construction of the game's random number
// generators so every call site derives its PCG state the same way.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; both are derived from the one value
// so a single scalar seed reproduces the full deal sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns a non-deterministic seed from the OS entropy source.
// Used once at engine construction; the generator is never re-seeded.
func Seed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// ChaCha8-backed global is still non-deterministic per process.
		return int64(rand.Uint64())
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// mix is a splitmix64 finalizer, spreading low-entropy seeds across the
// full 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
