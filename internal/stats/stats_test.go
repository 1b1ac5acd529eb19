package stats

import (
	"math"
	"testing"
)

func almost(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.N != 8 {
		t.Fatalf("N = %d", s.N)
	}
	if !almost(s.Mean, 5, 1e-12) {
		t.Fatalf("Mean = %v", s.Mean)
	}
	if !almost(s.SD, 2.13809, 1e-4) {
		t.Fatalf("SD = %v", s.SD)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Fatalf("Min/Max = %v/%v", s.Min, s.Max)
	}
	if !almost(s.Median, 4.5, 1e-12) {
		t.Fatalf("Median = %v", s.Median)
	}
	if empty := Describe(nil); empty.N != 0 {
		t.Fatalf("empty Describe N = %d", empty.N)
	}
}

func TestTTest(t *testing.T) {
	a := []float64{20.1, 21.3, 19.8, 22.0, 20.6, 21.1}
	b := []float64{18.2, 19.0, 18.8, 17.9, 18.5, 19.3}
	res, err := TTest(a, b)
	if err != nil {
		t.Fatalf("TTest: %v", err)
	}
	if res.DF != 10 {
		t.Fatalf("DF = %d", res.DF)
	}
	if res.T <= 0 {
		t.Fatalf("higher first group should give a positive t, got %v", res.T)
	}
	if res.P <= 0 || res.P >= 0.01 {
		t.Fatalf("clearly separated groups: p = %v", res.P)
	}
	if !(res.CILower < res.MeanDiff && res.MeanDiff < res.CIUpper) {
		t.Fatalf("CI [%v, %v] should bracket the mean difference %v", res.CILower, res.CIUpper, res.MeanDiff)
	}

	if _, err := TTest([]float64{1}, b); err == nil {
		t.Fatal("expected an error for a single-observation group")
	}
}

func TestChiSquareKnownTable(t *testing.T) {
	// 2x2 with all expected counts 15: chi2 = 4 * 25/15 = 6.666...
	res, err := ChiSquare([][]float64{{10, 20}, {20, 10}})
	if err != nil {
		t.Fatalf("ChiSquare: %v", err)
	}
	if !almost(res.Chi2, 6.6667, 1e-3) {
		t.Fatalf("Chi2 = %v", res.Chi2)
	}
	if res.DF != 1 {
		t.Fatalf("DF = %d", res.DF)
	}
	if !almost(res.P, 0.0098, 5e-4) {
		t.Fatalf("P = %v", res.P)
	}
}

func TestChiSquarePrunesEmptyCategories(t *testing.T) {
	// the all-zero middle row and last column must not break the test
	res, err := ChiSquare([][]float64{
		{10, 20, 0},
		{0, 0, 0},
		{20, 10, 0},
	})
	if err != nil {
		t.Fatalf("ChiSquare: %v", err)
	}
	if res.DF != 1 {
		t.Fatalf("DF after pruning = %d", res.DF)
	}

	if _, err := ChiSquare([][]float64{{5, 0}, {7, 0}}); err == nil {
		t.Fatal("degenerate table should error")
	}
}

func TestSpearman(t *testing.T) {
	// perfectly monotone, non-linear
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1, 4, 9, 16, 25, 36}
	res, err := Spearman(x, y)
	if err != nil {
		t.Fatalf("Spearman: %v", err)
	}
	if !almost(res.Rho, 1, 1e-12) {
		t.Fatalf("Rho = %v", res.Rho)
	}
	if res.P > 1e-6 {
		t.Fatalf("P = %v", res.P)
	}

	// ties get average ranks; anti-monotone pairs go negative
	res, err = Spearman([]float64{1, 2, 2, 3}, []float64{8, 6, 6, 1})
	if err != nil {
		t.Fatalf("Spearman with ties: %v", err)
	}
	if res.Rho >= 0 {
		t.Fatalf("anti-monotone Rho = %v", res.Rho)
	}

	if _, err := Spearman([]float64{1, 1, 1}, []float64{1, 2, 3}); err == nil {
		t.Fatal("constant input should error")
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{0.0001, "***"},
		{0.005, "**"},
		{0.03, "*"},
		{0.2, "ns"},
		{0.05, "ns"},
	}
	for _, c := range cases {
		if got := Stars(c.p); got != c.want {
			t.Errorf("Stars(%v) = %q, want %q", c.p, got, c.want)
		}
	}
}
