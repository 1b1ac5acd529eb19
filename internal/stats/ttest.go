package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult is an independent two-sample t-test with a pooled variance
// estimate, the default the survey analyses assume.
type TTestResult struct {
	MeanA    float64
	MeanB    float64
	MeanDiff float64
	CILower  float64
	CIUpper  float64
	T        float64
	DF       int
	P        float64
}

// TTest compares the means of two independent samples. The confidence
// interval uses the 1.96 normal approximation on the unpooled standard
// error, matching how the study reported its intervals.
func TTest(a, b []float64) (TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, fmt.Errorf("t-test needs at least 2 observations per group (got %d and %d)", len(a), len(b))
	}
	na, nb := float64(len(a)), float64(len(b))
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)

	df := len(a) + len(b) - 2
	pooled := ((na-1)*varA + (nb-1)*varB) / float64(df)
	se := math.Sqrt(pooled * (1/na + 1/nb))
	if se == 0 {
		return TTestResult{}, fmt.Errorf("t-test: zero pooled variance")
	}
	t := (meanA - meanB) / se

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * dist.CDF(-math.Abs(t))

	seDiff := math.Sqrt(varA/na + varB/nb)
	diff := meanA - meanB
	return TTestResult{
		MeanA:    meanA,
		MeanB:    meanB,
		MeanDiff: diff,
		CILower:  diff - 1.96*seDiff,
		CIUpper:  diff + 1.96*seDiff,
		T:        t,
		DF:       df,
		P:        p,
	}, nil
}
