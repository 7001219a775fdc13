package stats_test

import (
	"testing"
	"time"

	"github.com/z21kamon/Diamond-Square-Islands/stats"

	"github.com/stretchr/testify/assert"
)

func TestDurations(t *testing.T) {
	var reports []int
	var db stats.Durations
	db.Init(3, 2, func(db *stats.Durations, n int) {
		reports = append(reports, n)
	})

	assert.Equal(t, time.Duration(0), db.Average())

	db.Collect(1 * time.Millisecond)
	db.Collect(3 * time.Millisecond)
	assert.Equal(t, 2, db.Count())
	assert.Equal(t, 2*time.Millisecond, db.Average())

	db.Collect(5 * time.Millisecond)
	db.Collect(7 * time.Millisecond)
	assert.Equal(t, 3, db.Count(), "the oldest duration is overwritten")
	assert.Equal(t, 4, db.Collected())
	assert.Equal(t, 15*time.Millisecond, db.Total())
	assert.Equal(t, 5*time.Millisecond, db.Average())
	assert.Equal(t, 7*time.Millisecond, db.Max())

	assert.Equal(t, []int{2, 4}, reports)
}

func TestDurationsZeroValue(t *testing.T) {
	var db stats.Durations
	db.Collect(time.Second)
	assert.Equal(t, 0, db.Count())
	assert.Equal(t, time.Duration(0), db.Average())
}
