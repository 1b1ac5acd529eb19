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

var anthropometricVars = []Variable{
	{"Weight (kg)", "Weight (kg)"},
	{"Height (m)", "Height (m)"},
	{prep.ColBMIFinal, "BMI"},
}

// Anthropometry analyzes weight, height and BMI: descriptives, independent
// t-tests, and the BMI category distribution with its chi-square test.
func Anthropometry(t *dataset.Table, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "section_b_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	desc := report.Table{
		Name:   "Descriptive Statistics",
		Header: []string{"Variable", "Group", "N", "Mean", "SD", "Min", "Max", "Median"},
	}
	ttests := report.Table{
		Name: "T-Tests",
		Header: []string{
			"Variable", "Urban Mean", "Rural Mean", "Mean Difference",
			"95% CI Lower", "95% CI Upper", "t-statistic", "p-value",
			"Significance", "Interpretation",
		},
	}
	var boxLabels []string
	var boxGroups [][]float64
	for _, v := range anthropometricVars {
		if !t.HasColumn(v.Column) {
			continue
		}
		desc.Rows = append(desc.Rows, describeRows(t, v.Column, v.Label)...)

		urban, rural := splitFloats(t, v.Column)
		res, err := stats.TTest(urban, rural)
		if err != nil {
			ttests.Rows = append(ttests.Rows, []string{v.Label, "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "Could not compute"})
			continue
		}
		ttests.Rows = append(ttests.Rows, []string{
			v.Label,
			f2(res.MeanA), f2(res.MeanB), f2(res.MeanDiff),
			f2(res.CILower), f2(res.CIUpper), f3(res.T), p4(res.P),
			stats.Stars(res.P), stats.Interpret(res.P),
		})
		boxLabels = append(boxLabels, v.Label+" Urban", v.Label+" Rural")
		boxGroups = append(boxGroups, urban, rural)
	}

	catFreq, catPct, catChi := bmiCategoryTables(t)

	if len(boxGroups) > 0 {
		err := report.BoxPlots(
			filepath.Join(vizDir, "anthropometric_boxplots.png"),
			"Anthropometric Measures by Residence", "Value",
			boxLabels, boxGroups,
		)
		if err != nil {
			return err
		}
	}
	urbanBMI, ruralBMI := splitFloats(t, prep.ColBMIFinal)
	if len(urbanBMI) > 0 {
		if err := report.Histogram(filepath.Join(vizDir, "bmi_distribution_urban.png"), "Urban BMI Distribution", "BMI", urbanBMI, 20); err != nil {
			return err
		}
	}
	if len(ruralBMI) > 0 {
		if err := report.Histogram(filepath.Join(vizDir, "bmi_distribution_rural.png"), "Rural BMI Distribution", "BMI", ruralBMI, 20); err != nil {
			return err
		}
	}
	if err := bmiCategoryChart(t, filepath.Join(vizDir, "bmi_categories.png")); err != nil {
		return err
	}

	return report.WriteWorkbook(
		filepath.Join(resultsDir, "section_b_anthropometry.xlsx"),
		[]report.Table{desc, ttests, catFreq, catPct, catChi},
	)
}

// bmiCategoryTables builds the category frequency, percentage and chi-square
// tables. The Unknown bin is excluded from the test: it encodes missing
// data, not a nutritional state.
func bmiCategoryTables(t *dataset.Table) (freq, pctTbl, chi report.Table) {
	urbanN, ruralN := residenceTotals(t)
	freq = report.Table{
		Name:   "BMI Category Frequency",
		Header: []string{"BMI Category", "Urban", "Rural", "Total"},
	}
	pctTbl = report.Table{
		Name:   "BMI Category Percentage",
		Header: []string{"BMI Category", "Urban_%", "Rural_%"},
	}
	var obs [][]float64
	for _, cat := range prep.Categories {
		var urban, rural int
		for r := 0; r < t.Len(); r++ {
			if t.Cell(r, prep.ColBMICategory) != string(cat) {
				continue
			}
			switch residenceOf(t, r) {
			case residenceUrban:
				urban++
			case residenceRural:
				rural++
			}
		}
		if urban+rural == 0 {
			continue
		}
		freq.Rows = append(freq.Rows, []string{
			string(cat), strconv.Itoa(urban), strconv.Itoa(rural), strconv.Itoa(urban + rural),
		})
		pctTbl.Rows = append(pctTbl.Rows, []string{string(cat), pct(urban, urbanN), pct(rural, ruralN)})
		if cat != prep.Unknown {
			obs = append(obs, []float64{float64(urban), float64(rural)})
		}
	}

	chi = report.Table{
		Name:   "BMI Chi-Square Test",
		Header: []string{"Test", "Chi-square", "df", "p-value", "Significance", "Interpretation"},
	}
	res, err := stats.ChiSquare(obs)
	if err != nil {
		chi.Rows = append(chi.Rows, []string{"BMI Category Distribution", "N/A", "N/A", "N/A", "N/A", "Could not compute"})
		return freq, pctTbl, chi
	}
	chi.Rows = append(chi.Rows, []string{
		"BMI Category Distribution",
		f3(res.Chi2), strconv.Itoa(res.DF), p4(res.P),
		stats.Stars(res.P), stats.Interpret(res.P),
	})
	return freq, pctTbl, chi
}

func bmiCategoryChart(t *dataset.Table, path string) error {
	urbanN, ruralN := residenceTotals(t)
	var cats []string
	var urban, rural []float64
	for _, cat := range prep.Categories {
		if cat == prep.Unknown {
			continue
		}
		var u, r2 int
		for r := 0; r < t.Len(); r++ {
			if !strings.EqualFold(t.Cell(r, prep.ColBMICategory), string(cat)) {
				continue
			}
			switch residenceOf(t, r) {
			case residenceUrban:
				u++
			case residenceRural:
				r2++
			}
		}
		cats = append(cats, string(cat))
		pu, pr := 0.0, 0.0
		if urbanN > 0 {
			pu = float64(u) * 100 / float64(urbanN)
		}
		if ruralN > 0 {
			pr = float64(r2) * 100 / float64(ruralN)
		}
		urban = append(urban, pu)
		rural = append(rural, pr)
	}
	return report.GroupedBar(path, "BMI Category Distribution by Residence", "Percentage (%)", cats, []report.Series{
		{Name: residenceUrban, Values: urban},
		{Name: residenceRural, Values: rural},
	})
}
