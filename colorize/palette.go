package colorize

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hsluv/hsluv-go"
	"go.uber.org/multierr"
)

// NumBands is the number of elevation bands in a palette.
const NumBands = 5

// Band indices, lowest to highest.
const (
	Water = iota
	Sand
	Grass
	Mountain
	Peak
)

// Top decides what happens to cells at or above the mountain band's
// threshold.
type Top int

const (
	// TopPeak colors them with the fifth band.
	TopPeak Top = iota
	// TopClamp colors them like mountains.
	TopClamp
	// TopUnassigned leaves them transparent.
	TopUnassigned
)

var topNames = [...]string{
	TopPeak:       "peak",
	TopClamp:      "clamp",
	TopUnassigned: "none",
}

func (top Top) String() string {
	if top < 0 || int(top) >= len(topNames) {
		return fmt.Sprintf("Top(%d)", int(top))
	}
	return topNames[top]
}

// ParseTop parses a top band policy by name: peak, clamp or none.
func ParseTop(name string) (Top, error) {
	for top, topName := range topNames {
		if name == topName {
			return Top(top), nil
		}
	}
	return 0, fmt.Errorf("unknown top band policy %q", name)
}

// Band colors elevations below a multiple of the interval, a fifth of the
// field's elevation range.
type Band struct {
	Name      string
	Threshold float64
	Color     color.RGBA
}

// Palette is an ordered list of bands, water to peak.
//
// A cell takes the first band whose limit, its threshold times the interval,
// exceeds its elevation. The last band's threshold is not consulted:
// cells at or above the fourth threshold are handled by Top.
type Palette struct {
	Bands [NumBands]Band
	Top   Top
}

// ClassicPalette returns the water, sand, grass, mountain and snow colors with
// bands at every interval.
func ClassicPalette() Palette {
	return Palette{
		Bands: [NumBands]Band{
			{"water", 1, color.RGBA{28, 163, 236, 0xff}},
			{"sand", 2, color.RGBA{194, 178, 128, 0xff}},
			{"grass", 3, color.RGBA{72, 144, 48, 0xff}},
			{"mountain", 4, color.RGBA{136, 140, 141, 0xff}},
			{"peak", 5, color.RGBA{250, 250, 250, 0xff}},
		},
		Top: TopPeak,
	}
}

// HuePalette returns a palette with the classic thresholds whose colors are
// picked in HSLuv, so that lightness rises evenly from water to peak.
func HuePalette(top Top) Palette {
	p := ClassicPalette()
	p.Top = top
	p.Bands[Water].Color = newColor(250, 90, 50)
	p.Bands[Sand].Color = newColor(70, 60, 75)
	p.Bands[Grass].Color = newColor(125, 80, 55)
	p.Bands[Mountain].Color = newColor(60, 10, 65)
	p.Bands[Peak].Color = newColor(0, 0, 96)
	return p
}

// PaletteByName returns the classic or hue palette with the given top policy.
func PaletteByName(name string, top Top) (Palette, error) {
	switch name {
	case "classic":
		p := ClassicPalette()
		p.Top = top
		return p, nil
	case "hue":
		return HuePalette(top), nil
	}
	return Palette{}, fmt.Errorf("unknown palette %q", name)
}

func newColor(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{
		uint8(unit(r) * 0xff),
		uint8(unit(g) * 0xff),
		uint8(unit(b) * 0xff),
		0xff,
	}
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Validate checks that thresholds are positive and strictly increasing and
// that the top policy is known.
func (p Palette) Validate() error {
	var err error
	prev := 0.0
	for i, band := range p.Bands {
		if !(band.Threshold > prev) {
			err = multierr.Append(err, fmt.Errorf("band %d (%s) threshold %v must exceed %v", i, band.Name, band.Threshold, prev))
			continue
		}
		prev = band.Threshold
	}
	if p.Top < TopPeak || p.Top > TopUnassigned {
		err = multierr.Append(err, fmt.Errorf("unknown top band policy %v", p.Top))
	}
	return err
}

// Limit returns the elevation below which band i applies, in a field whose
// elevation range is spread.
func (p Palette) Limit(i int, spread float64) float64 {
	return p.Bands[i].Threshold * (spread / NumBands)
}

// Band returns the band index for a raw elevation in a field whose elevation
// range is spread. It returns false when the cell is left unassigned.
//
// Elevations are compared as they are, not relative to the field's minimum,
// which is why the field must be normalized first.
func (p Palette) Band(z, spread float64) (int, bool) {
	interval := spread / NumBands
	for i := 0; i < Peak; i++ {
		if z < p.Bands[i].Threshold*interval {
			return i, true
		}
	}
	switch p.Top {
	case TopPeak:
		return Peak, true
	case TopClamp:
		return Mountain, true
	}
	return Peak, false
}
