// Package modspace wraps indices around a toroidal space, where walking off
// one edge enters from the opposite edge.
package modspace

// Space is a one dimensional toroidal space with the given period.
type Space int

// Wrap maps any index, negative included, into [0, period).
//
// A space with no period has a single position.
func (s Space) Wrap(i int) int {
	p := int(s)
	if p <= 0 {
		return 0
	}
	return ((i % p) + p) % p
}

// Add adds an offset to an index, wrapping around the space at the edges.
func (s Space) Add(i, offset int) int {
	return s.Wrap(i + offset)
}
