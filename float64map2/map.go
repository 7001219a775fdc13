// Package float64map2 provides common transforms for two dimensional maps of 64
// bit floating point values.
package float64map2

// Map is a two dimensional field of values, using 64 bit floats.
type Map interface {
	Eval2(x, y float64) float64
}

// Func adapts a plain function to a Map.
type Func func(x, y float64) float64

// Eval2 gives the value at a coordinate.
func (f Func) Eval2(x, y float64) float64 {
	return f(x, y)
}
