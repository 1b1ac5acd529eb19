package sections

import (
	"path/filepath"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/report"
)

var habitVars = []Variable{
	{Column: "Meals per Day", Label: "Meals per Day"},
	{Column: "Do you skip meals", Label: "Meal Skipping"},
	{Column: "Which meal skipped", Label: "Meal Skipped"},
	{Column: "Reason for skipping meals", Label: "Reason for Skipping"},
	{Column: "Source of food", Label: "Food Source"},
	{Column: "Eating Out Frequency", Label: "Eating Out Frequency"},
	{Column: "Prefer snacks over food? (Yes/No)", Label: "Snack Preference"},
	{Column: "Reason for snack preference", Label: "Reason for Snack Preference"},
}

// Habits analyzes day-to-day eating behavior: frequency tables per habit
// variable and chi-square tests against residence.
func Habits(t *dataset.Table, resultsDir string) error {
	vizDir := filepath.Join(resultsDir, "section_e_visualizations")
	if err := ensureDir(vizDir); err != nil {
		return err
	}

	// Fail-safe: re-normalize the Yes/No columns in case the snapshot
	// predates the canonicalization step.
	prep.NormalizeColumns(t, []string{"Do you skip meals", "Prefer snacks over food? (Yes/No)"})

	desc := frequencyTable(t, habitVars, "Variable", "Category")
	chi := chiSquareBattery(t, habitVars, "Variable")

	charts := []struct {
		column string
		file   string
	}{
		{"Meals per Day", "meals_per_day.png"},
		{"Do you skip meals", "meal_skipping.png"},
		{"Which meal skipped", "meal_type_skipped.png"},
		{"Eating Out Frequency", "eating_out_frequency.png"},
		{"Prefer snacks over food? (Yes/No)", "snack_preference.png"},
		{"Reason for skipping meals", "reasons_for_skipping.png"},
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
		filepath.Join(resultsDir, "section_e_dietary_habits.xlsx"),
		[]report.Table{desc, chi},
	)
}
