package sections

import (
	"path/filepath"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/report"
	"github.com/vivianokoye/nutristat/internal/stats"
)

// factorVars are the Likert-scale factors influencing dietary choices.
// Labels shorten the questionnaire's column headers for reporting.
var factorVars = []Variable{
	{Column: "Food availability", Label: "Food Availability"},
	{Column: "Individual preferences", Label: "Individual Preferences"},
	{Column: "Culture/Tradition", Label: "Culture/Tradition"},
	{Column: "Socio-economic status", Label: "Socio-economic Status"},
	{Column: "Nutritional knowledge", Label: "Nutritional Knowledge"},
	{Column: "Geographical location (SA/A/D/SD)", Label: "Geographical Location"},
	{Column: "Peer influence", Label: "Peer Influence"},
	{Column: "Cost of food", Label: "Cost of Food"},
	{Column: "Health status", Label: "Health Status"},
	{Column: "Educational level of parents", Label: "Parental Education"},
	{Column: "Season", Label: "Seasonality"},
}

// likertCodes maps agreement responses to an ordinal 4..1 scale. Both the
// spelled-out and abbreviated forms occur in the data.
var likertCodes = map[string]float64{
	"Strongly Agree":    4,
	"Agree":             3,
	"Disagree":          2,
	"Strongly Disagree": 1,
	"SA":                4,
	"A":                 3,
	"D":                 2,
	"SD":                1,
}

// Factors analyzes the Likert factors behind dietary choices: frequency
// tables, chi-square by residence, and Spearman correlations of each coded
// factor with DDS and BMI.
func Factors(t *dataset.Table, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "section_d_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	desc := frequencyTable(t, factorVars, "Factor", "Response")
	chi := chiSquareBattery(t, factorVars, "Factor")
	corr := factorCorrelations(t)

	if err := correlationChart(corr, filepath.Join(vizDir, "factor_correlations.png")); err != nil {
		return err
	}

	return report.WriteWorkbook(
		filepath.Join(resultsDir, "section_d_diet_factors.xlsx"),
		[]report.Table{desc, chi, corr},
	)
}

// likertSeries codes a factor column, returning the coded values and the
// rows they came from so callers can pair them with another column.
func likertSeries(t *dataset.Table, column string) (coded []float64, rows []int) {
	for r := 0; r < t.Len(); r++ {
		if v, ok := likertCodes[strings.TrimSpace(t.Cell(r, column))]; ok {
			coded = append(coded, v)
			rows = append(rows, r)
		}
	}
	return coded, rows
}

func factorCorrelations(t *dataset.Table) report.Table {
	tbl := report.Table{
		Name: "Correlations",
		Header: []string{
			"Factor",
			"Correlation_with_DDS", "p-value_DDS",
			"Correlation_with_BMI", "p-value_BMI",
		},
	}
	for _, v := range factorVars {
		if !t.HasColumn(v.Column) {
			continue
		}
		coded, rows := likertSeries(t, v.Column)
		if len(coded) == 0 {
			continue
		}
		row := []string{v.Label}
		row = append(row, correlationCells(t, prep.ColDDS, coded, rows)...)
		row = append(row, correlationCells(t, prep.ColBMIFinal, coded, rows)...)
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

// correlationCells pairs the coded factor with a numeric column over the
// rows where both are present and renders rho and p, or N/A when the
// correlation is undefined.
func correlationCells(t *dataset.Table, column string, coded []float64, rows []int) []string {
	if !t.HasColumn(column) {
		return []string{"N/A", "N/A"}
	}
	var xs, ys []float64
	for i, r := range rows {
		if y, ok := dataset.Float(t.Cell(r, column)); ok {
			xs = append(xs, coded[i])
			ys = append(ys, y)
		}
	}
	res, err := stats.Spearman(xs, ys)
	if err != nil {
		return []string{"N/A", "N/A"}
	}
	return []string{f3(res.Rho), p4(res.P)}
}

// correlationChart draws the DDS and BMI correlation coefficients per
// factor as a grouped bar chart, the closest analogue of the original
// heatmap the plotting stack offers.
func correlationChart(corr report.Table, path string) error {
	var cats []string
	var dds, bmi []float64
	for _, row := range corr.Rows {
		d, okD := dataset.Float(row[1])
		b, okB := dataset.Float(row[3])
		if !okD && !okB {
			continue
		}
		cats = append(cats, row[0])
		if !okD {
			d = 0
		}
		if !okB {
			b = 0
		}
		dds = append(dds, d)
		bmi = append(bmi, b)
	}
	if len(cats) == 0 {
		return nil
	}
	return report.GroupedBar(path, "Correlation of Factors with DDS and BMI", "Spearman rho", cats, []report.Series{
		{Name: "DDS", Values: dds},
		{Name: "BMI", Values: bmi},
	})
}
