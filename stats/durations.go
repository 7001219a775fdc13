// Package stats collects timings of repeated operations.
package stats

import (
	"math"
	"time"
)

// Durations implements a ringbuffer of collected time durations with an
// optional reporting function and interval.
type Durations struct {
	Report      func(db *Durations, i int)
	ReportEvery int

	d []time.Duration
	i int
	n int
}

// Init sizes the ringbuffer to hold n durations and calls report after every
// every-th collected duration.
func (db *Durations) Init(n, every int, report func(db *Durations, i int)) {
	db.i = 0
	db.n = 0
	db.d = make([]time.Duration, 0, n)
	db.ReportEvery = every
	db.Report = report
}

// Collect records a duration, overwriting the oldest once the buffer is full.
func (db *Durations) Collect(d time.Duration) {
	if cap(db.d) == 0 {
		return
	}
	if len(db.d) < cap(db.d) {
		db.d = append(db.d, d)
	} else {
		db.d[db.i] = d
		db.i = (db.i + 1) % len(db.d)
	}
	db.n++
	db.observe(db.n)
}

func (db *Durations) observe(n int) {
	if db.Report != nil &&
		db.ReportEvery != 0 &&
		n%db.ReportEvery == 0 {
		db.Report(db, n)
	}
}

// Count returns how many durations the buffer holds.
func (db *Durations) Count() int {
	return len(db.d)
}

// Collected returns how many durations have ever been collected.
func (db *Durations) Collected() int {
	return db.n
}

// Total sums the buffered durations.
func (db *Durations) Total() time.Duration {
	var total time.Duration
	for _, d := range db.d {
		total += d
	}
	return total
}

// Average returns the mean of the buffered durations.
func (db *Durations) Average() time.Duration {
	if len(db.d) == 0 {
		return 0
	}
	return time.Duration(math.Round(float64(db.Total()) / float64(db.Count())))
}

// Max returns the longest buffered duration.
func (db *Durations) Max() time.Duration {
	var max time.Duration
	for _, d := range db.d {
		if d > max {
			max = d
		}
	}
	return max
}
