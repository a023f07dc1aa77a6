package transform

import "math"

// Percentile computes the linearly interpolated p-th percentile of values,
// which must already be sorted ascending. p is in [0,100]. Empty input
// yields 0.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := (p / 100) * float64(n-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower < 0 {
		lower = 0
	}
	if upper >= n {
		// guards the overrun at p=100
		return sorted[lower]
	}
	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
