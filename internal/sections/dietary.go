package sections

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/report"
	"github.com/vivianokoye/nutristat/internal/stats"
)

// importantItems are the food items singled out for per-item chi-square
// testing, one or two markers per group. "Milk " keeps the header's
// trailing space.
var importantItems = []string{
	"Rice", "Beans", "Yam", "Fish", "Chicken", "Egg", "Tomatoes",
	"Ugu", "Orange", "Banana", "Milk ", "Soft drinks", "Water",
}

// Dietary analyzes the food frequency questionnaire: per-group consumption
// scores, per-item chi-square tests, and the DDS comparison.
func Dietary(t *dataset.Table, catalog prep.Catalog, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "section_c_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	groupScores := groupConsumptionTable(t, catalog)
	chi := foodItemChiSquares(t)
	ddsDesc, ddsTTest := ddsTables(t)

	if err := groupScoreChart(t, catalog, filepath.Join(vizDir, "food_group_consumption.png")); err != nil {
		return err
	}
	if dds := t.Floats(prep.ColDDS); len(dds) > 0 {
		if err := report.Histogram(filepath.Join(vizDir, "dds_distribution.png"), "Dietary Diversity Score Distribution", "DDS", dds, catalog.Size()+1); err != nil {
			return err
		}
	}

	return report.WriteWorkbook(
		filepath.Join(resultsDir, "section_c_dietary_patterns.xlsx"),
		[]report.Table{groupScores, chi, ddsDesc, ddsTTest},
	)
}

// groupMeanScore averages the column means of a group's coded items,
// matching how the original pooled group consumption. Only rows passing the
// filter count; items with no data contribute nothing.
func groupMeanScore(t *dataset.Table, group prep.Group, keep func(row int) bool) (float64, bool) {
	var colMeans []float64
	for _, item := range group.Items {
		col := prep.CodedColumn(item)
		if !t.HasColumn(col) {
			continue
		}
		sum, n := 0.0, 0
		for r := 0; r < t.Len(); r++ {
			if !keep(r) {
				continue
			}
			if f, ok := dataset.Float(t.Cell(r, col)); ok {
				sum += f
				n++
			}
		}
		if n > 0 {
			colMeans = append(colMeans, sum/float64(n))
		}
	}
	if len(colMeans) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, m := range colMeans {
		sum += m
	}
	return sum / float64(len(colMeans)), true
}

func groupConsumptionTable(t *dataset.Table, catalog prep.Catalog) report.Table {
	tbl := report.Table{
		Name:   "Food Group Consumption",
		Header: []string{"Food Group", "Overall Mean Score", "Urban Mean Score", "Rural Mean Score", "Difference"},
	}
	everyone := func(int) bool { return true }
	urbanOnly := func(r int) bool { return residenceOf(t, r) == residenceUrban }
	ruralOnly := func(r int) bool { return residenceOf(t, r) == residenceRural }
	for _, g := range catalog.Groups() {
		overall, ok := groupMeanScore(t, g, everyone)
		if !ok {
			continue
		}
		urban, _ := groupMeanScore(t, g, urbanOnly)
		rural, _ := groupMeanScore(t, g, ruralOnly)
		tbl.Rows = append(tbl.Rows, []string{
			g.Name, f2(overall), f2(urban), f2(rural), f2(urban - rural),
		})
	}
	return tbl
}

func foodItemChiSquares(t *dataset.Table) report.Table {
	vars := make([]Variable, 0, len(importantItems))
	for _, item := range importantItems {
		vars = append(vars, Variable{Column: prep.CodedColumn(item), Label: strings.TrimSpace(item)})
	}
	return chiSquareBattery(t, vars, "Food Item")
}

func ddsTables(t *dataset.Table) (desc, ttest report.Table) {
	desc = report.Table{
		Name:   "DDS Descriptives",
		Header: []string{"Group", "N", "Mean", "SD", "Min", "Max", "Median"},
	}
	urban, rural := splitFloats(t, prep.ColDDS)
	for _, g := range []struct {
		name string
		vals []float64
	}{
		{"Overall", t.Floats(prep.ColDDS)},
		{residenceUrban, urban},
		{residenceRural, rural},
	} {
		s := stats.Describe(g.vals)
		desc.Rows = append(desc.Rows, []string{
			g.name, strconv.Itoa(s.N), f2(s.Mean), f2(s.SD),
			strconv.FormatFloat(s.Min, 'f', 0, 64),
			strconv.FormatFloat(s.Max, 'f', 0, 64),
			strconv.FormatFloat(s.Median, 'f', 1, 64),
		})
	}

	ttest = report.Table{
		Name: "DDS T-Test",
		Header: []string{
			"Comparison", "Urban Mean", "Rural Mean", "Mean Difference",
			"95% CI Lower", "95% CI Upper", "t-statistic", "p-value",
			"Significance", "Interpretation",
		},
	}
	res, err := stats.TTest(urban, rural)
	if err != nil {
		ttest.Rows = append(ttest.Rows, []string{"Urban vs Rural DDS", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "Could not compute"})
		return desc, ttest
	}
	ttest.Rows = append(ttest.Rows, []string{
		"Urban vs Rural DDS",
		f2(res.MeanA), f2(res.MeanB), f2(res.MeanDiff),
		f2(res.CILower), f2(res.CIUpper), f3(res.T), p4(res.P),
		stats.Stars(res.P), stats.Interpret(res.P),
	})
	return desc, ttest
}

func groupScoreChart(t *dataset.Table, catalog prep.Catalog, path string) error {
	urbanOnly := func(r int) bool { return residenceOf(t, r) == residenceUrban }
	ruralOnly := func(r int) bool { return residenceOf(t, r) == residenceRural }
	var cats []string
	var urban, rural []float64
	for _, g := range catalog.Groups() {
		if _, ok := groupMeanScore(t, g, func(int) bool { return true }); !ok {
			continue
		}
		u, _ := groupMeanScore(t, g, urbanOnly)
		r, _ := groupMeanScore(t, g, ruralOnly)
		cats = append(cats, g.Name)
		urban = append(urban, u)
		rural = append(rural, r)
	}
	if len(cats) == 0 {
		return nil
	}
	return report.GroupedBar(path, "Food Group Consumption by Residence", "Mean Frequency Score", cats, []report.Series{
		{Name: residenceUrban, Values: urban},
		{Name: residenceRural, Values: rural},
	})
}
