// Package analytics is the aggregation engine: pure functions computing
// KPIs and time-bucketed series from an already-filtered record set. No
// function here performs I/O or mutates its input, and every function
// returns a zero-valued or empty result for an empty set.
package analytics

import (
	"math"
	"sort"
)

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the sample standard deviation (ddof=1). Records are a
// sample of true spending behaviour, so sample std is used everywhere.
// Fewer than two observations yields 0.
func sampleStd(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// quantile computes the p-quantile of a sorted slice using linear
// interpolation between order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Quartiles returns the 25th, 50th and 75th percentiles of per-transaction
// costs.
func Quartiles(costs []float64) (lower, median, upper float64) {
	if len(costs) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(costs))
	copy(sorted, costs)
	sort.Float64s(sorted)
	return quantile(sorted, 0.25), quantile(sorted, 0.5), quantile(sorted, 0.75)
}

// StandardDeviation is the sample standard deviation of per-transaction
// costs, 0 when fewer than two records exist.
func StandardDeviation(costs []float64) float64 {
	return sampleStd(costs)
}
