package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SpearmanResult is a Spearman rank correlation with its two-sided p-value.
type SpearmanResult struct {
	Rho float64
	P   float64
}

// Spearman computes the rank correlation between paired samples, with
// average ranks for ties. The p-value uses the t approximation on n-2
// degrees of freedom.
func Spearman(x, y []float64) (SpearmanResult, error) {
	if len(x) != len(y) {
		return SpearmanResult{}, fmt.Errorf("spearman: mismatched lengths %d and %d", len(x), len(y))
	}
	n := len(x)
	if n < 3 {
		return SpearmanResult{}, fmt.Errorf("spearman needs at least 3 pairs (got %d)", n)
	}
	rho := stat.Correlation(ranks(x), ranks(y), nil)
	if math.IsNaN(rho) {
		return SpearmanResult{}, fmt.Errorf("spearman: constant input")
	}

	p := 1.0
	if math.Abs(rho) < 1 {
		t := rho * math.Sqrt(float64(n-2)/(1-rho*rho))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		p = 2 * dist.CDF(-math.Abs(t))
	} else {
		p = 0
	}
	return SpearmanResult{Rho: rho, P: p}, nil
}

// ranks assigns 1-based ranks with ties sharing their average rank.
func ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	out := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
