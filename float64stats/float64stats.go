// Package float64stats accumulates summary statistics over a collection of 64
// bit floating point values, such as the elevations of a heightfield.
package float64stats

import (
	"fmt"
	"math"
)

// Stats capture the min, max, mean and spread of a collection of values.
//
// The zero value is not ready for use; call Reset first so that Min and Max
// start at the far ends of the number line.
type Stats struct {
	Min   float64
	Max   float64
	Num   int
	Total float64

	mean float64
	m2   float64
}

// Reset spreads Min and Max to the farthest possible boundary values.
func (stats *Stats) Reset() {
	stats.Min = math.Inf(1)
	stats.Max = math.Inf(-1)
	stats.Num = 0
	stats.Total = 0
	stats.mean = 0
	stats.m2 = 0
}

// Add accounts for a number in the collection, raising the max or lowering
// the min.
func (stats *Stats) Add(num float64) {
	if num > stats.Max {
		stats.Max = num
	}
	if num < stats.Min {
		stats.Min = num
	}
	stats.Num++
	stats.Total += num

	// Welford's running variance.
	delta := num - stats.mean
	stats.mean += delta / float64(stats.Num)
	stats.m2 += delta * (num - stats.mean)
}

// Spread returns the gap between the highest and lowest value.
func (stats Stats) Spread() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Max - stats.Min
}

// Degenerate reports whether every value in the collection is the same.
func (stats Stats) Degenerate() bool {
	return stats.Spread() == 0
}

// Lerp returns the value at a fraction of the way from Min to Max.
func (stats Stats) Lerp(fraction float64) float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Min + (stats.Max-stats.Min)*fraction
}

// Project projects a value in the statistical range into the target range.
func (stats Stats) Project(from, into float64) float64 {
	spread := stats.Spread()
	if spread == 0 {
		return 0
	}
	return (from - stats.Min) * into / spread
}

// Mean returns the average of the collection.
func (stats Stats) Mean() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.Total / float64(stats.Num)
}

// Variance returns the population variance of the collection.
func (stats Stats) Variance() float64 {
	if stats.Num == 0 {
		return 0
	}
	return stats.m2 / float64(stats.Num)
}

func (stats Stats) String() string {
	return fmt.Sprintf("%g...%g...%g", stats.Min, stats.Mean(), stats.Max)
}

// FromSlice returns the statistics of a slice of values.
func FromSlice(nums []float64) Stats {
	var stats Stats
	stats.Reset()
	for _, num := range nums {
		stats.Add(num)
	}
	return stats
}
