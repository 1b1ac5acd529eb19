package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics every section reports.
type Summary struct {
	N      int
	Mean   float64
	SD     float64
	Min    float64
	Max    float64
	Median float64
}

// Describe computes descriptive statistics over the given values. An empty
// slice yields the zero Summary. SD is the sample standard deviation.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Summary{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median(sorted),
	}
	if len(xs) > 1 {
		s.SD = stat.StdDev(xs, nil)
	}
	return s
}

// median interpolates the middle of an already-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
