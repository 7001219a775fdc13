// Package xorshiftstar implements the xorshift* pseudorandom number generator.
//
// https://en.wikipedia.org/wiki/Xorshift
package xorshiftstar

import "math/rand"

// Source is a xorshiftstar random number generator.
type Source struct {
	state uint64
}

var (
	_ rand.Source64 = (*Source)(nil)
)

// New returns a new random number generator for the given seed.
func New(seed int64) *Source {
	r := &Source{}
	r.Seed(seed)
	return r
}

// Seed seeds the random number generator.
//
// Any seed is usable, zero included, since each step offsets the state before
// shifting.
func (r *Source) Seed(seed int64) {
	r.state = uint64(seed)
}

// Uint64 returns a random number.
func (r *Source) Uint64() uint64 {
	state := r.state + 1442695040888963407
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	r.state = state
	return state * 6364136223846793005
}

// Int63 returns a random non-negative number.
func (r *Source) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// Float64 returns a random number in [0, 1).
func (r *Source) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Uniform returns a random number in [-1, 1).
func (r *Source) Uniform() float64 {
	return r.Float64()*2 - 1
}
