package sections

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/report"
)

// incomeCodes orders the family income brackets.
var incomeCodes = map[string]float64{
	"Below ₦30,000":      1,
	"₦30,000 - ₦50,000":  2,
	"₦50,000 - ₦100,000": 3,
	"Above ₦100,000":     4,
}

// clusterGroupNames are the food groups used as clustering features. Spices
// and drinks are left out because nearly everyone consumes them daily and
// they carry no pattern signal.
var clusterGroupNames = map[string]bool{
	"Dairy": true, "Tubers": true, "Legumes": true, "Cereals": true,
	"Meats": true, "Vegetables": true, "Fruits": true, "Snacks": true,
}

const clusterCount = 3

// Advanced runs the two model-based analyses: a logistic regression
// predicting undernutrition and a k-means clustering of dietary patterns.
func Advanced(t *dataset.Table, catalog prep.Catalog, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "advanced_analysis_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	coef, perf, err := logisticTables(t, vizDir)
	if err != nil {
		return fmt.Errorf("logistic regression: %w", err)
	}
	profiles, err := clusterTables(t, catalog, vizDir, &perf)
	if err != nil {
		return fmt.Errorf("cluster analysis: %w", err)
	}

	return report.WriteWorkbook(
		filepath.Join(resultsDir, "advanced_analysis.xlsx"),
		[]report.Table{coef, perf, profiles},
	)
}

// regressionCase is one complete-case observation.
type regressionCase struct {
	features []float64
	outcome  float64
}

// regressionDesign builds the complete-case design matrix. A predictor
// participates only when at least one row carries a value for it; rows then
// need every participating predictor.
func regressionDesign(t *dataset.Table) (names []string, cases []regressionCase) {
	type predictor struct {
		name string
		at   func(r int) (float64, bool)
	}
	const colSkipMeals = "Do you skip meals"
	const colIncome = "Family Monthly Income"
	candidates := []predictor{
		{"Residence_coded", func(r int) (float64, bool) {
			switch residenceOf(t, r) {
			case residenceUrban:
				return 1, true
			case residenceRural:
				return 0, true
			}
			return 0, false
		}},
		{prep.ColDDS, func(r int) (float64, bool) {
			return dataset.Float(t.Cell(r, prep.ColDDS))
		}},
		{"Meal_skipping_coded", func(r int) (float64, bool) {
			if !t.HasColumn(colSkipMeals) {
				return 0, true
			}
			switch t.Cell(r, colSkipMeals) {
			case "":
				return 0, false
			case "Yes":
				return 1, true
			}
			return 0, true
		}},
		{"Income_coded", func(r int) (float64, bool) {
			v, ok := incomeCodes[t.Cell(r, colIncome)]
			return v, ok
		}},
	}

	var active []predictor
	for _, p := range candidates {
		if p.name == prep.ColDDS && !t.HasColumn(prep.ColDDS) {
			continue
		}
		if p.name == "Income_coded" && !t.HasColumn(colIncome) {
			continue
		}
		any := false
		for r := 0; r < t.Len() && !any; r++ {
			_, any = p.at(r)
		}
		if any {
			active = append(active, p)
			names = append(names, p.name)
		}
	}

rows:
	for r := 0; r < t.Len(); r++ {
		feats := make([]float64, len(active))
		for i, p := range active {
			v, ok := p.at(r)
			if !ok {
				continue rows
			}
			feats[i] = v
		}
		outcome := 0.0
		if t.Cell(r, prep.ColBMICategory) == string(prep.Underweight) {
			outcome = 1
		}
		cases = append(cases, regressionCase{features: feats, outcome: outcome})
	}
	return names, cases
}

func logisticTables(t *dataset.Table, vizDir string) (coef, perf report.Table, err error) {
	names, obs := regressionDesign(t)
	if len(names) == 0 || len(obs) <= len(names)+1 {
		return coef, perf, fmt.Errorf("too few complete cases (%d) for %d predictors", len(obs), len(names))
	}
	positives := 0
	for _, c := range obs {
		if c.outcome == 1 {
			positives++
		}
	}
	if positives == 0 || positives == len(obs) {
		return coef, perf, fmt.Errorf("outcome has a single class (%d of %d undernourished)", positives, len(obs))
	}

	n, p := len(obs), len(names)
	raw := mat.NewDense(n, p, nil)
	y := make([]float64, n)
	for i, c := range obs {
		raw.SetRow(i, c.features)
		y[i] = c.outcome
	}

	scaled, _, sds := standardize(raw)
	beta := fitLogistic(scaled, y)

	// Undo the feature scaling so coefficients read in original units.
	coef = report.Table{
		Name:   "Logistic Regression",
		Header: []string{"Predictor", "Coefficient", "Odds Ratio", "Log Odds"},
	}
	unscaled := make([]float64, p)
	for j := 0; j < p; j++ {
		if sds[j] != 0 {
			unscaled[j] = beta[j+1] / sds[j]
		}
		coef.Rows = append(coef.Rows, []string{
			names[j], f3(unscaled[j]), f3(math.Exp(unscaled[j])), f3(unscaled[j]),
		})
	}

	tn, fp, fn, tp := 0, 0, 0, 0
	correct := 0
	for i := 0; i < n; i++ {
		z := beta[0]
		for j := 0; j < p; j++ {
			z += beta[j+1] * scaled.At(i, j)
		}
		pred := 0.0
		if sigmoid(z) >= 0.5 {
			pred = 1
		}
		switch {
		case pred == 0 && y[i] == 0:
			tn++
		case pred == 1 && y[i] == 0:
			fp++
		case pred == 0 && y[i] == 1:
			fn++
		default:
			tp++
		}
		if pred == y[i] {
			correct++
		}
	}

	perf = report.Table{
		Name:   "Model Performance",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Observations", strconv.Itoa(n)},
			{"Accuracy", f3(float64(correct) / float64(n))},
			{"True Negatives", strconv.Itoa(tn)},
			{"False Positives", strconv.Itoa(fp)},
			{"False Negatives", strconv.Itoa(fn)},
			{"True Positives", strconv.Itoa(tp)},
		},
	}

	chartErr := report.GroupedBar(
		filepath.Join(vizDir, "logistic_regression_coefficients.png"),
		"Logistic Regression Coefficients for Undernutrition", "Coefficient",
		names, []report.Series{{Name: "Coefficient", Values: unscaled}},
	)
	if chartErr != nil {
		return coef, perf, chartErr
	}
	return coef, perf, nil
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// fitLogistic fits an intercept plus one weight per column by batch gradient
// ascent on the log-likelihood. Features are standardized by the caller, so
// a fixed learning rate converges.
func fitLogistic(x *mat.Dense, y []float64) []float64 {
	n, p := x.Dims()
	beta := make([]float64, p+1)
	grad := make([]float64, p+1)
	const (
		learningRate = 0.1
		iterations   = 2000
	)
	for it := 0; it < iterations; it++ {
		for j := range grad {
			grad[j] = 0
		}
		for i := 0; i < n; i++ {
			z := beta[0]
			for j := 0; j < p; j++ {
				z += beta[j+1] * x.At(i, j)
			}
			resid := y[i] - sigmoid(z)
			grad[0] += resid
			for j := 0; j < p; j++ {
				grad[j+1] += resid * x.At(i, j)
			}
		}
		for j := range beta {
			beta[j] += learningRate * grad[j] / float64(n)
		}
	}
	return beta
}

// standardize centers and scales each column to unit variance. A constant
// column keeps its zero scores and reports sd 0.
func standardize(x *mat.Dense) (scaled *mat.Dense, means, sds []float64) {
	n, p := x.Dims()
	scaled = mat.NewDense(n, p, nil)
	means = make([]float64, p)
	sds = make([]float64, p)
	for j := 0; j < p; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += x.At(i, j)
		}
		means[j] = sum / float64(n)
		ss := 0.0
		for i := 0; i < n; i++ {
			d := x.At(i, j) - means[j]
			ss += d * d
		}
		sds[j] = math.Sqrt(ss / float64(n))
		for i := 0; i < n; i++ {
			if sds[j] == 0 {
				scaled.Set(i, j, 0)
				continue
			}
			scaled.Set(i, j, (x.At(i, j)-means[j])/sds[j])
		}
	}
	return scaled, means, sds
}

// clusterCase is one participant's per-group mean consumption profile.
type clusterCase struct {
	row    int
	scores []float64
}

// clusterFeatures computes each participant's mean coded score per food
// group. A group with no coded value for a participant makes the row
// incomplete and drops it.
func clusterFeatures(t *dataset.Table, catalog prep.Catalog) (groups []string, cases []clusterCase) {
	var selected []prep.Group
	for _, g := range catalog.Groups() {
		if !clusterGroupNames[g.Name] {
			continue
		}
		present := false
		for _, item := range g.Items {
			if t.HasColumn(prep.CodedColumn(item)) {
				present = true
				break
			}
		}
		if present {
			selected = append(selected, g)
			groups = append(groups, g.Name)
		}
	}

rows:
	for r := 0; r < t.Len(); r++ {
		scores := make([]float64, len(selected))
		for i, g := range selected {
			sum, cnt := 0.0, 0
			for _, item := range g.Items {
				col := prep.CodedColumn(item)
				if !t.HasColumn(col) {
					continue
				}
				if f, ok := dataset.Float(t.Cell(r, col)); ok {
					sum += f
					cnt++
				}
			}
			if cnt == 0 {
				continue rows
			}
			scores[i] = sum / float64(cnt)
		}
		cases = append(cases, clusterCase{row: r, scores: scores})
	}
	return groups, cases
}

func clusterTables(t *dataset.Table, catalog prep.Catalog, vizDir string, perf *report.Table) (report.Table, error) {
	groups, cases := clusterFeatures(t, catalog)
	profiles := report.Table{Name: "Cluster Profiles"}
	if len(cases) < clusterCount {
		return profiles, fmt.Errorf("too few complete cases (%d) for %d clusters", len(cases), clusterCount)
	}

	n, p := len(cases), len(groups)
	raw := mat.NewDense(n, p, nil)
	for i, c := range cases {
		raw.SetRow(i, c.scores)
	}
	scaled, _, _ := standardize(raw)

	labels := kMeans(scaled, clusterCount, rand.New(rand.NewSource(42)))
	sil := silhouette(scaled, labels, clusterCount)
	perf.Rows = append(perf.Rows, []string{"Silhouette Score (k=3)", f3(sil)})

	profiles.Header = append([]string{"Cluster", "N", "Percentage"}, groups...)
	profiles.Header = append(profiles.Header, "Urban_%", "Rural_%")

	var chartSeries []report.Series
	for k := 0; k < clusterCount; k++ {
		size, urban, rural := 0, 0, 0
		sums := make([]float64, p)
		for i, c := range cases {
			if labels[i] != k {
				continue
			}
			size++
			for j, s := range c.scores {
				sums[j] += s
			}
			switch residenceOf(t, c.row) {
			case residenceUrban:
				urban++
			case residenceRural:
				rural++
			}
		}
		row := []string{
			fmt.Sprintf("Cluster %d", k+1),
			strconv.Itoa(size),
			pct(size, n) + "%",
		}
		means := make([]float64, p)
		for j := range sums {
			if size > 0 {
				means[j] = sums[j] / float64(size)
			}
			row = append(row, f2(means[j]))
		}
		row = append(row, pct(urban, size)+"%", pct(rural, size)+"%")
		profiles.Rows = append(profiles.Rows, row)
		chartSeries = append(chartSeries, report.Series{
			Name:   fmt.Sprintf("Cluster %d", k+1),
			Values: means,
		})
	}

	if err := report.GroupedBar(
		filepath.Join(vizDir, "cluster_profiles.png"),
		"Dietary Pattern Clusters", "Mean Frequency Score",
		groups, chartSeries,
	); err != nil {
		return profiles, err
	}
	return profiles, nil
}

// kMeans runs Lloyd's algorithm with several random restarts, keeping the
// assignment with the lowest within-cluster sum of squares.
func kMeans(x *mat.Dense, k int, rng *rand.Rand) []int {
	n, p := x.Dims()
	best := make([]int, n)
	bestInertia := math.Inf(1)
	labels := make([]int, n)

	const restarts = 10
	for attempt := 0; attempt < restarts; attempt++ {
		centers := mat.NewDense(k, p, nil)
		for c, i := range rng.Perm(n)[:k] {
			centers.SetRow(c, mat.Row(nil, i, x))
		}

		for iter := 0; iter < 300; iter++ {
			changed := false
			for i := 0; i < n; i++ {
				bestC, bestD := 0, math.Inf(1)
				for c := 0; c < k; c++ {
					d := sqDist(x, i, centers, c)
					if d < bestD {
						bestC, bestD = c, d
					}
				}
				if labels[i] != bestC {
					labels[i] = bestC
					changed = true
				}
			}
			if !changed && iter > 0 {
				break
			}
			counts := make([]int, k)
			sums := mat.NewDense(k, p, nil)
			for i := 0; i < n; i++ {
				counts[labels[i]]++
				for j := 0; j < p; j++ {
					sums.Set(labels[i], j, sums.At(labels[i], j)+x.At(i, j))
				}
			}
			for c := 0; c < k; c++ {
				if counts[c] == 0 {
					// Reseed an empty cluster from a random point.
					centers.SetRow(c, mat.Row(nil, rng.Intn(n), x))
					continue
				}
				for j := 0; j < p; j++ {
					centers.Set(c, j, sums.At(c, j)/float64(counts[c]))
				}
			}
		}

		inertia := 0.0
		for i := 0; i < n; i++ {
			inertia += sqDist(x, i, centers, labels[i])
		}
		if inertia < bestInertia {
			bestInertia = inertia
			copy(best, labels)
		}
	}
	return best
}

func sqDist(a *mat.Dense, i int, b *mat.Dense, j int) float64 {
	_, p := a.Dims()
	d := 0.0
	for c := 0; c < p; c++ {
		diff := a.At(i, c) - b.At(j, c)
		d += diff * diff
	}
	return d
}

// silhouette is the mean silhouette coefficient over all points. Points in
// singleton clusters score 0.
func silhouette(x *mat.Dense, labels []int, k int) float64 {
	n, _ := x.Dims()
	counts := make([]int, k)
	for _, l := range labels {
		counts[l]++
	}
	total := 0.0
	for i := 0; i < n; i++ {
		if counts[labels[i]] <= 1 {
			continue
		}
		sums := make([]float64, k)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sums[labels[j]] += math.Sqrt(sqDist(x, i, x, j))
		}
		a := sums[labels[i]] / float64(counts[labels[i]]-1)
		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == labels[i] || counts[c] == 0 {
				continue
			}
			if m := sums[c] / float64(counts[c]); m < b {
				b = m
			}
		}
		if math.IsInf(b, 1) {
			continue
		}
		if m := math.Max(a, b); m > 0 {
			total += (b - a) / m
		}
	}
	return total / float64(n)
}
