// Package terrainio writes generated terrain out for a host engine: a
// grayscale heightmap, the color texture, raw float heights and the water
// elevation.
//
// Files are written to a temporary name and renamed into place, so readers
// never observe a partial artifact.
package terrainio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/ioutil"
	"math"
	"path"

	"github.com/z21kamon/Diamond-Square-Islands/heightfield"

	"github.com/chewxy/math32"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Default artifact names.
const (
	HeightName = "height.png"
	ColorName  = "colors.png"
	RawName    = "heights.raw"
	WaterName  = "water.txt"
)

// ErrRawSize is returned when a raw heights file does not hold size*size
// values.
var ErrRawSize = errors.New("terrainio: raw heights do not match the field size")

// Artifacts are the results of one generation run.
type Artifacts struct {
	Field  *heightfield.Field
	Colors image.Image
	Water  float64
}

// WriteAll writes every artifact into dir under its default name. It writes
// as many as it can and returns all failures together.
func WriteAll(fs billy.Filesystem, dir string, a Artifacts) error {
	var err error
	err = multierr.Append(err, WriteHeightPNG(fs, path.Join(dir, HeightName), a.Field))
	err = multierr.Append(err, WriteRaw(fs, path.Join(dir, RawName), a.Field))
	if a.Colors != nil {
		err = multierr.Append(err, WriteColorPNG(fs, path.Join(dir, ColorName), a.Colors))
	}
	err = multierr.Append(err, WriteWater(fs, path.Join(dir, WaterName), a.Water))
	return err
}

// HeightImage renders the field as 16 bit grayscale, lowest elevation black
// and highest white.
func HeightImage(field *heightfield.Field) *image.Gray16 {
	stats := field.Stats()
	size := field.Size()
	img := image.NewGray16(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := math.Round(stats.Project(field.At(x, y), 0xffff))
			img.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	return img
}

// WriteHeightPNG writes the field as a 16 bit grayscale PNG.
func WriteHeightPNG(fs billy.Filesystem, name string, field *heightfield.Field) error {
	img := HeightImage(field)
	return writeFile(fs, name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteColorPNG writes a color texture as a PNG.
func WriteColorPNG(fs billy.Filesystem, name string, img image.Image) error {
	return writeFile(fs, name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteRaw writes the field row by row as little endian 32 bit floats scaled
// into [0, 1], the form terrain engines take heights in.
func WriteRaw(fs billy.Filesystem, name string, field *heightfield.Field) error {
	stats := field.Stats()
	cells := field.Cells()
	buf := make([]byte, 4*len(cells))
	for i, z := range cells {
		v := math32.Max(0, math32.Min(1, float32(stats.Project(z, 1))))
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return writeFile(fs, name, func(w io.Writer) error {
		_, err := w.Write(buf)
		return err
	})
}

// ReadRaw reads heights written by WriteRaw into a new field of the given
// size.
func ReadRaw(fs billy.Filesystem, name string, size int) (_ *heightfield.Field, err error) {
	field, err := heightfield.New(size)
	if err != nil {
		return nil, err
	}

	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, err
	}
	cells := field.Cells()
	if len(buf) != 4*len(cells) {
		return nil, fmt.Errorf("%w: %s holds %d bytes, want %d", ErrRawSize, name, len(buf), 4*len(cells))
	}
	for i := range cells {
		v := math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
		if math32.IsNaN(v) {
			return nil, fmt.Errorf("terrainio: %s: NaN height at cell %d", name, i)
		}
		cells[i] = float64(v)
	}
	return field, nil
}

// WriteWater writes the water elevation as text.
func WriteWater(fs billy.Filesystem, name string, elevation float64) error {
	return writeFile(fs, name, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%g\n", elevation)
		return err
	})
}

func writeFile(fs billy.Filesystem, name string, write func(w io.Writer) error) (err error) {
	dir, base := path.Split(name)
	if dir == "" {
		dir = "."
	} else if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	temp, err := fs.TempFile(dir, "."+base)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(temp)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, fs.Remove(temp.Name()))
	}
	return fs.Rename(temp.Name(), name)
}
