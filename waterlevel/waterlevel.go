// Package waterlevel places a water plane over a heightfield at a fraction of
// the way from its lowest to its highest elevation.
package waterlevel

import (
	"fmt"

	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
)

// Calculator computes water elevations for a configured level.
type Calculator struct {
	// Level is the fraction of the elevation range to submerge, in [0, 1].
	Level float64
}

// Validate reports whether the level lies in [0, 1].
func (c Calculator) Validate() error {
	if !(c.Level >= 0 && c.Level <= 1) {
		return fmt.Errorf("water level %v out of range [0, 1]", c.Level)
	}
	return nil
}

// Elevation returns the absolute elevation of the water plane,
// min + (max-min)*Level. A flat field puts the water at its elevation
// regardless of Level.
func (c Calculator) Elevation(field *heightfield.Field) float64 {
	stats := field.Stats()
	if stats.Degenerate() {
		return stats.Min
	}
	return stats.Lerp(c.Level)
}

// Coverage counts the cells lying strictly below a water elevation.
func Coverage(field *heightfield.Field, elevation float64) int {
	var total int
	for _, z := range field.Cells() {
		if z < elevation {
			total++
		}
	}
	return total
}
