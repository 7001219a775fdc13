package diamondsquare

import "github.com/z21kamon/Diamond-Square-Islands/xorshiftstar"

// Source yields uniform random displacements in [-1, 1].
//
// A generation run draws from its source in a fixed order, so a seeded source
// reproduces the same field.
type Source interface {
	Uniform() float64
}

// NewSource returns a seeded xorshift* source.
func NewSource(seed int64) Source {
	return xorshiftstar.New(seed)
}

// Sequence is a source that replays a fixed list of displacements, starting
// over when it runs out.
type Sequence struct {
	values []float64
	drawn  int
}

var _ Source = (*Sequence)(nil)

// NewSequence returns a source that replays the given values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Uniform returns the next value of the sequence, or zero for an empty
// sequence.
func (s *Sequence) Uniform() float64 {
	if len(s.values) == 0 {
		s.drawn++
		return 0
	}
	v := s.values[s.drawn%len(s.values)]
	s.drawn++
	return v
}

// Drawn returns how many values have been drawn.
func (s *Sequence) Drawn() int {
	return s.drawn
}
