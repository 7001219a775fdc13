// Package colorize paints a heightfield into a texture by bucketing each
// cell's elevation into one of five bands.
package colorize

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/z21kamon/Diamond-Square-Islands/float64map2"
	"github.com/z21kamon/Diamond-Square-Islands/float64stats"
	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
	"go.uber.org/multierr"
)

// ErrNotNormalized is returned for fields with negative elevations.
var ErrNotNormalized = errors.New("colorize: field must be normalized")

// DegenerateFieldWarning reports a field with no elevation range. Every cell
// falls in the top band.
type DegenerateFieldWarning struct {
	Elevation float64
}

func (w DegenerateFieldWarning) Error() string {
	return fmt.Sprintf("degenerate field: every cell at elevation %g", w.Elevation)
}

// UnassignedBandWarning reports cells left transparent because they reach the
// top threshold and the palette assigns no top band.
type UnassignedBandWarning struct {
	Cells     int
	Elevation float64
}

func (w UnassignedBandWarning) Error() string {
	return fmt.Sprintf("%d cells at or above elevation %g have no band", w.Cells, w.Elevation)
}

// Result is a colorized texture.
type Result struct {
	Image      *image.RGBA
	Counts     [NumBands]int
	Unassigned int
	Stats      float64stats.Stats

	top float64
}

// Warnings returns the non-fatal conditions met while colorizing, or nil.
func (r *Result) Warnings() error {
	var err error
	if r.Stats.Degenerate() {
		err = multierr.Append(err, DegenerateFieldWarning{Elevation: r.Stats.Min})
	}
	if r.Unassigned > 0 {
		err = multierr.Append(err, UnassignedBandWarning{
			Cells:     r.Unassigned,
			Elevation: r.top,
		})
	}
	return err
}

// Colorize paints a normalized field at its own resolution.
func Colorize(field *heightfield.Field, palette Palette) (*Result, error) {
	return Texture(field, field.Stats(), palette, field.Size(), field.Size())
}

// Texture paints a width by height texture from a map of elevations whose
// statistics are given. Pixel (x, y) samples the map at (x, y); wrap the map
// in a float64map2.Scale to paint a texture of another resolution.
func Texture(m float64map2.Map, stats float64stats.Stats, palette Palette, width, height int) (*Result, error) {
	if stats.Min < 0 {
		return nil, ErrNotNormalized
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	spread := stats.Spread()
	res := &Result{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		Stats: stats,
		top:   palette.Limit(Mountain, spread),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			z := m.Eval2(float64(x), float64(y))
			band, ok := palette.Band(z, spread)
			if !ok {
				res.Unassigned++
				continue
			}
			res.Counts[band]++
			res.Image.SetRGBA(x, y, palette.Bands[band].Color)
		}
	}
	return res, nil
}

// Clear makes every pixel of a texture fully transparent.
func Clear(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
