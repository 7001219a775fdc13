// Package diamondsquare generates fractal heightfields by diamond-square
// subdivision.
//
// Each level of subdivision first sets the center of every square to the mean
// of its corners (the diamond step), then sets the center of every diamond to
// the mean of its four axis neighbors (the square step), each plus a random
// displacement. Neighbors of the square step wrap around the field, and the
// first row and column are mirrored onto the last, so the result tiles.
//
// Corners are never displaced and start at zero.
package diamondsquare

import (
	"errors"
	"math"

	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
)

// ErrNoSource is returned when a generator has no random source.
var ErrNoSource = errors.New("diamondsquare: no random source")

// InitialScale is the displacement scale of the first subdivision level.
const InitialScale = 0.5

// Generator holds the parameters of a generation run.
type Generator struct {
	// Roughness sets how fast displacement decays: after each subdivision
	// level the scale is multiplied by 2^-Roughness. Higher roughness
	// therefore makes smoother terrain, the inverse of the usual convention.
	// Conventionally in [0, 1].
	Roughness float64

	// Source supplies the displacements.
	Source Source
}

// Generate allocates a field of the given size, fills it by diamond-square
// subdivision and normalizes it so its lowest elevation is zero.
//
// Size must be 2^k+1; otherwise Generate returns an *heightfield.InvalidSizeError
// and generates nothing. Sizes below 3 leave the field flat.
func Generate(size int, roughness float64, src Source) (*heightfield.Field, error) {
	return Generator{Roughness: roughness, Source: src}.Generate(size)
}

// Generate allocates, fills and normalizes a field of the given size.
func (g Generator) Generate(size int) (*heightfield.Field, error) {
	if g.Source == nil {
		return nil, ErrNoSource
	}
	field, err := heightfield.New(size)
	if err != nil {
		return nil, err
	}
	g.Subdivide(field)
	field.Normalize()
	return field, nil
}

// Subdivide overwrites the field with raw, unnormalized elevations.
func (g Generator) Subdivide(field *heightfield.Field) {
	field.Reset()

	size := field.Size()
	scale := InitialScale
	decay := math.Pow(2, -g.Roughness)
	for side := size - 1; side > 1; side /= 2 {
		half := side / 2
		g.diamond(field, side, half, scale)
		g.square(field, side, half, scale)
		field.MirrorEdges()
		scale *= decay
	}
}

func (g Generator) diamond(field *heightfield.Field, side, half int, scale float64) {
	last := field.Size() - 1
	for x := 0; x < last; x += side {
		for y := 0; y < last; y += side {
			mean := (field.At(x, y) +
				field.At(x+side, y) +
				field.At(x, y+side) +
				field.At(x+side, y+side)) / 4
			field.Set(x+half, y+half, mean+g.Source.Uniform()*scale)
		}
	}
}

func (g Generator) square(field *heightfield.Field, side, half int, scale float64) {
	last := field.Size() - 1
	for x := 0; x < last; x += half {
		for y := (x + half) % side; y < last; y += side {
			mean := (field.WrappedAt(x-half, y) +
				field.WrappedAt(x+half, y) +
				field.WrappedAt(x, y+half) +
				field.WrappedAt(x, y-half)) / 4
			field.Set(x, y, mean+g.Source.Uniform()*scale)
		}
	}
}
