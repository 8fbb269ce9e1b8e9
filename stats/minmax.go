// Package stats provides the small numeric reductions the colormap model
// depends on. Everything here is a single pass over the input and never
// mutates it.
package stats

import (
	"errors"
	"math"
)

// ErrNoData is returned when the input holds no usable sample.
var ErrNoData = errors.New("stats: no usable samples")

// Result is the outcome of a MinMax pass.
type Result struct {
	// Minimum and Maximum are the smallest and largest non-NaN samples.
	Minimum float64
	Maximum float64
	// MinPositive is the smallest strictly positive sample. It is only
	// meaningful when HasMinPositive is true.
	MinPositive    float64
	HasMinPositive bool
}

// MinMax scans data once and returns its minimum and maximum. When
// minPositive is set the smallest strictly positive sample is tracked as
// well. NaN samples are skipped; if nothing remains after skipping, MinMax
// returns ErrNoData.
func MinMax(data []float64, minPositive bool) (Result, error) {
	var r Result
	seen := false
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if !seen {
			r.Minimum = v
			r.Maximum = v
			seen = true
		} else {
			if v < r.Minimum {
				r.Minimum = v
			}
			if v > r.Maximum {
				r.Maximum = v
			}
		}
		if minPositive && v > 0 && (!r.HasMinPositive || v < r.MinPositive) {
			r.MinPositive = v
			r.HasMinPositive = true
		}
	}
	if !seen {
		return Result{}, ErrNoData
	}
	return r, nil
}
