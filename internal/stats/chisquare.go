package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareResult is a chi-square test of independence on a contingency
// table.
type ChiSquareResult struct {
	Chi2 float64
	DF   int
	P    float64
}

// ChiSquare runs the test of independence on an observed-count table.
// All-zero rows and columns are pruned first (empty categories carry no
// information); a table that cannot support the test errors out so callers
// can record "could not compute" instead of a fabricated p-value.
func ChiSquare(observed [][]float64) (ChiSquareResult, error) {
	obs := pruneEmpty(observed)
	r := len(obs)
	if r < 2 || len(obs[0]) < 2 {
		return ChiSquareResult{}, fmt.Errorf("chi-square needs at least a 2x2 table after pruning empty categories")
	}
	c := len(obs[0])

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	total := 0.0
	for i := range obs {
		for j := range obs[i] {
			rowSums[i] += obs[i][j]
			colSums[j] += obs[i][j]
			total += obs[i][j]
		}
	}
	if total == 0 {
		return ChiSquareResult{}, fmt.Errorf("chi-square: empty table")
	}

	chi2 := 0.0
	for i := range obs {
		for j := range obs[i] {
			expected := rowSums[i] * colSums[j] / total
			d := obs[i][j] - expected
			chi2 += d * d / expected
		}
	}
	df := (r - 1) * (c - 1)
	dist := distuv.ChiSquared{K: float64(df)}
	return ChiSquareResult{Chi2: chi2, DF: df, P: dist.Survival(chi2)}, nil
}

func pruneEmpty(observed [][]float64) [][]float64 {
	if len(observed) == 0 {
		return nil
	}
	cols := len(observed[0])
	keepCol := make([]bool, cols)
	for j := 0; j < cols; j++ {
		for i := range observed {
			if j < len(observed[i]) && observed[i][j] != 0 {
				keepCol[j] = true
				break
			}
		}
	}
	var out [][]float64
	for _, row := range observed {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		var kept []float64
		for j, keep := range keepCol {
			if keep {
				v := 0.0
				if j < len(row) {
					v = row[j]
				}
				kept = append(kept, v)
			}
		}
		out = append(out, kept)
	}
	return out
}
