// Package heightfield provides a square grid of elevations whose side is one
// more than a power of two, the shape that diamond-square subdivision fills.
//
// A Field is owned by whichever component is writing it. Once written it may
// be shared with any number of readers, but never written concurrently.
package heightfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/z21kamon/Diamond-Square-Islands/float64map2"
	"github.com/z21kamon/Diamond-Square-Islands/float64stats"
	"github.com/z21kamon/Diamond-Square-Islands/modspace"
)

// ErrInvalidSize matches every InvalidSizeError.
var ErrInvalidSize = errors.New("invalid heightfield size")

// InvalidSizeError reports a side length that is not 2^k+1.
type InvalidSizeError struct {
	Size int
}

func (err *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid heightfield size %d: must be 2^k+1", err.Size)
}

// Is makes errors.Is(err, ErrInvalidSize) hold.
func (err *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidSize
}

// ValidSize reports whether a side length is 2^k+1 for some k >= 0, or the
// single cell field of size 1. Sizes whose cell count overflows an int are
// not valid.
func ValidSize(size int) bool {
	return size >= 1 &&
		(size-1)&(size-2) == 0 &&
		size <= math.MaxInt/size
}

// Field is a square grid of elevations, stored row by row.
type Field struct {
	size  int
	space modspace.Space
	cells []float64
}

var _ float64map2.Map = (*Field)(nil)

// New returns an all zero field with the given side length.
func New(size int) (*Field, error) {
	if !ValidSize(size) {
		return nil, &InvalidSizeError{Size: size}
	}
	return &Field{
		size:  size,
		space: modspace.Space(size - 1),
		cells: make([]float64, size*size),
	}, nil
}

// Size returns the side length of the field.
func (f *Field) Size() int {
	return f.size
}

// Cells returns the elevations row by row, indexed y*Size()+x.
//
// The slice aliases the field.
func (f *Field) Cells() []float64 {
	return f.cells
}

// At returns the elevation at a point.
func (f *Field) At(x, y int) float64 {
	return f.cells[y*f.size+x]
}

// Set writes the elevation at a point.
func (f *Field) Set(x, y int, z float64) {
	f.cells[y*f.size+x] = z
}

// Wrap maps an index onto [0, Size()-1), treating the field as a torus whose
// last row and column coincide with its first.
func (f *Field) Wrap(i int) int {
	return f.space.Wrap(i)
}

// WrappedAt returns the elevation at a point after wrapping both coordinates.
func (f *Field) WrappedAt(x, y int) float64 {
	return f.At(f.space.Wrap(x), f.space.Wrap(y))
}

// MirrorEdges copies the first column onto the last and the first row onto
// the last, so that opposite edges agree as if the field were periodic.
func (f *Field) MirrorEdges() {
	last := f.size - 1
	if last <= 0 {
		return
	}
	for y := 0; y < f.size; y++ {
		f.Set(last, y, f.At(0, y))
	}
	for x := 0; x < f.size; x++ {
		f.Set(x, last, f.At(x, 0))
	}
}

// Reset sets every elevation to zero.
func (f *Field) Reset() {
	for i := range f.cells {
		f.cells[i] = 0
	}
}

// Stats scans the field for its lowest, highest and mean elevation.
func (f *Field) Stats() float64stats.Stats {
	return float64stats.FromSlice(f.cells)
}

// Normalize raises the whole field so that no elevation is negative. If the
// lowest elevation is below zero, its magnitude is added to every cell and the
// lowest elevation becomes exactly zero. It returns the amount added.
func (f *Field) Normalize() float64 {
	min := math.Inf(1)
	for _, z := range f.cells {
		if z < min {
			min = z
		}
	}
	if !(min < 0) {
		return 0
	}
	shift := -min
	for i := range f.cells {
		f.cells[i] += shift
	}
	return shift
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := *f
	c.cells = append([]float64(nil), f.cells...)
	return &c
}

// Eval2 samples the field between grid points by bilinear interpolation.
// Coordinates outside the field are clamped to its edges.
func (f *Field) Eval2(x, y float64) float64 {
	last := float64(f.size - 1)
	x = math.Max(0, math.Min(x, last))
	y = math.Max(0, math.Min(y, last))

	x0f, xt := math.Modf(x)
	y0f, yt := math.Modf(y)
	x0, y0 := int(x0f), int(y0f)
	x1, y1 := x0+1, y0+1
	if x1 >= f.size {
		x1 = x0
	}
	if y1 >= f.size {
		y1 = y0
	}

	a := f.At(x0, y0)*(1-xt) + f.At(x1, y0)*xt
	b := f.At(x0, y1)*(1-xt) + f.At(x1, y1)*xt
	return a*(1-yt) + b*yt
}
