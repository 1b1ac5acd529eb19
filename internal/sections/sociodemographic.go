package sections

import (
	"path/filepath"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/report"
)

// sociodemVars mirrors the survey instrument's Section A fields. "Age Group "
// keeps its trailing space: that is the column's actual header.
var sociodemVars = []Variable{
	{"Age Group ", "Age Group"},
	{"Living With", "Living Arrangement"},
	{"Family Size", "Family Size"},
	{"Education Level of Guardian", "Guardian Education"},
	{"Father Occupation", "Father Occupation"},
	{"Mother Occupation", "Mother Occupation"},
	{"Marital Status of Parents", "Parental Marital Status"},
	{"Family Monthly Income", "Monthly Income"},
	{"Religion", "Religion"},
	{"Ethnic Group", "Ethnicity"},
}

// Sociodemographic compares Section A's categorical variables between
// residences and writes the section workbook and charts.
func Sociodemographic(t *dataset.Table, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "section_a_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	desc := frequencyTable(t, sociodemVars, "Variable", "Category")
	chi := chiSquareBattery(t, sociodemVars, "Variable")

	urban, rural := residenceTotals(t)
	err := report.GroupedBar(
		filepath.Join(vizDir, "residence_distribution.png"),
		"Distribution of Participants by Residence", "Participants",
		[]string{residenceUrban, residenceRural},
		[]report.Series{{Name: "Participants", Values: []float64{float64(urban), float64(rural)}}},
	)
	if err != nil {
		return err
	}
	charts := []struct {
		column string
		file   string
	}{
		{"Age Group ", "age_distribution.png"},
		{"Education Level of Guardian", "guardian_education.png"},
		{"Family Monthly Income", "family_income.png"},
		{"Religion", "religion.png"},
	}
	for _, c := range charts {
		if !t.HasColumn(c.column) {
			continue
		}
		if err := categoricalBar(t, c.column, filepath.Join(vizDir, c.file)); err != nil {
			return err
		}
	}

	return report.WriteWorkbook(
		filepath.Join(resultsDir, "section_a_sociodemographic.xlsx"),
		[]report.Table{desc, chi},
	)
}

// categoricalBar charts a variable's per-residence percentage distribution.
func categoricalBar(t *dataset.Table, column, path string) error {
	urbanN, ruralN := residenceTotals(t)
	counts := countCategories(t, column)
	if len(counts) == 0 {
		return nil
	}
	cats := make([]string, len(counts))
	urban := make([]float64, len(counts))
	rural := make([]float64, len(counts))
	for i, cc := range counts {
		cats[i] = cc.value
		if urbanN > 0 {
			urban[i] = float64(cc.urban) * 100 / float64(urbanN)
		}
		if ruralN > 0 {
			rural[i] = float64(cc.rural) * 100 / float64(ruralN)
		}
	}
	return report.GroupedBar(path, column+" by Residence", "Percentage (%)", cats, []report.Series{
		{Name: residenceUrban, Values: urban},
		{Name: residenceRural, Values: rural},
	})
}
