package core

import "math/rand/v2"

// Random is the source of randomness sims draw from. *rand.Rand satisfies it,
// so tests can inject any seeded generator.
type Random interface {
	IntN(n int) int
	Uint64() uint64
}

var _ Random = (*rand.Rand)(nil)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Hash is a stateless random stream keyed by a seed. Draws for a given
// (seed, key) pair are always the same, which lets concurrent workers pull
// randomness without sharing a generator.
type Hash uint64

// At returns the pseudo-random value for key.
func (h Hash) At(key uint64) uint64 {
	return splitmix64(uint64(h) ^ splitmix64(key))
}

// IntN returns a value in [0, n) for key.
func (h Hash) IntN(key uint64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(h.At(key) % uint64(n))
}

// splitmix64 is a fast, well-distributed 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
