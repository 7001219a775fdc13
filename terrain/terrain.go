// Package terrain ties heightfield generation, water placement and
// colorization into the lifecycle a host drives: reset to a flat field, then
// generate on demand.
//
// A Terrain is not safe for concurrent use.
package terrain

import (
	"image"
	"log"
	"time"

	"github.com/z21kamon/Diamond-Square-Islands/colorize"
	"github.com/z21kamon/Diamond-Square-Islands/diamondsquare"
	"github.com/z21kamon/Diamond-Square-Islands/float64map2"
	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
	"github.com/z21kamon/Diamond-Square-Islands/stats"
	"github.com/z21kamon/Diamond-Square-Islands/waterlevel"

	"go.uber.org/multierr"
)

// Terrain holds the current heightfield and its derived water elevation and
// color texture.
type Terrain struct {
	// Logf receives progress and warnings; nil means log.Printf.
	Logf func(format string, args ...interface{})

	// Now stamps seeds for configurations that leave Seed at zero; nil means
	// time.Now.
	Now func() time.Time

	cfg     Config
	palette colorize.Palette
	timing  stats.Durations

	field    *heightfield.Field
	colors   *image.RGBA
	water    float64
	seed     int64
	warnings error
}

// ReportEvery is how many generations pass between timing reports.
const ReportEvery = 8

// New validates the configuration and returns a terrain in its reset state.
func New(cfg Config) (*Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.palette()
	if err != nil {
		return nil, err
	}
	t := &Terrain{
		cfg:     cfg,
		palette: palette,
	}
	t.timing.Init(2*ReportEvery, ReportEvery, t.reportTiming)
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset replaces the heightfield with a flat one at elevation zero and clears
// the color texture to fully transparent.
func (t *Terrain) Reset() error {
	field, err := heightfield.New(t.cfg.Size)
	if err != nil {
		return err
	}
	ts := t.cfg.textureSize()
	if t.colors != nil && t.colors.Bounds().Dx() == ts && t.colors.Bounds().Dy() == ts {
		colorize.Clear(t.colors)
	} else {
		t.colors = image.NewRGBA(image.Rect(0, 0, ts, ts))
	}
	t.field = field
	t.water = 0
	t.seed = 0
	t.warnings = nil
	return nil
}

// Generate builds a new heightfield, places the water plane and colors the
// texture. On error the previous state is left in place.
func (t *Terrain) Generate() error {
	start := time.Now()

	seed := t.cfg.Seed
	if seed == 0 {
		seed = t.now().UnixNano()
	}
	gen := diamondsquare.Generator{
		Roughness: t.cfg.Roughness,
		Source:    diamondsquare.NewSource(seed),
	}
	field, err := gen.Generate(t.cfg.Size)
	if err != nil {
		return err
	}

	fieldStats := field.Stats()
	water := t.cfg.water().Elevation(field)

	ts := t.cfg.textureSize()
	var m float64map2.Map = field
	if ts != field.Size() {
		m = float64map2.NewResample(field, field.Size(), ts)
	}
	res, err := colorize.Texture(m, fieldStats, t.palette, ts, ts)
	if err != nil {
		return err
	}

	t.field = field
	t.colors = res.Image
	t.water = water
	t.seed = seed
	t.warnings = res.Warnings()

	t.logf("generated %[1]vx%[1]v terrain seed=%v roughness=%v elevation=%v water=%v coverage=%v",
		field.Size(), seed, t.cfg.Roughness, fieldStats, water, t.Coverage())
	for _, warning := range multierr.Errors(t.warnings) {
		t.logf("warning: %v", warning)
	}
	t.timing.Collect(time.Since(start))
	return nil
}

// Config returns the configuration the terrain was built with.
func (t *Terrain) Config() Config { return t.cfg }

// Field returns the current heightfield. Callers must not modify it.
func (t *Terrain) Field() *heightfield.Field { return t.field }

// Colors returns the current color texture. Callers must not modify it.
func (t *Terrain) Colors() *image.RGBA { return t.colors }

// WaterElevation returns the absolute elevation of the water plane; zero
// after a reset.
func (t *Terrain) WaterElevation() float64 { return t.water }

// Seed returns the seed of the last generation; zero after a reset.
func (t *Terrain) Seed() int64 { return t.seed }

// Warnings returns the non-fatal conditions of the last generation, or nil.
func (t *Terrain) Warnings() error { return t.warnings }

// Coverage counts the submerged cells of the current heightfield.
func (t *Terrain) Coverage() int {
	return waterlevel.Coverage(t.field, t.water)
}

// Timing returns the generation durations collected so far.
func (t *Terrain) Timing() *stats.Durations { return &t.timing }

func (t *Terrain) reportTiming(db *stats.Durations, n int) {
	t.logf("generation #%v: avg=%v max=%v over last %v", n, db.Average(), db.Max(), db.Count())
}

func (t *Terrain) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t *Terrain) logf(format string, args ...interface{}) {
	if t.Logf != nil {
		t.Logf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}
