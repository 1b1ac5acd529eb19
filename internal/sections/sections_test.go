package sections

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/report"
)

// testSnapshot builds a small prepared table the way the pipeline would:
// raw survey rows pushed through the preparation stage.
func testSnapshot(t *testing.T) *dataset.Table {
	t.Helper()
	header := []string{
		"Residence", "Age Group ", "Family Monthly Income",
		"Weight (kg)", "Height (m)", "BMI",
		"Do you skip meals", "Prefer snacks over food? (Yes/No)",
		"Meals per Day", "Eating Out Frequency",
		"Food availability", "Nutritional knowledge",
		"Rice", "Beans", "Fish", "Milk ", "Tomatoes", "Orange", "Yam", "Biscuits ",
	}
	tbl := dataset.New(header)
	type person struct {
		res, income, weight, height, bmi, skip, snack string
		meals, eatOut, avail, knowledge               string
		rice, beans, fish, milk, tomato               string
		orange, yam, biscuits                         string
	}
	people := []person{
		{"urban", "₦50,000 - ₦100,000", "48", "1.60", "18.8", "no", "yes", "3", "Weekly", "Agree", "SA", "daily", "1x", "2-3x", "daily", "daily", "1x", "occ", "daily"},
		{"Urban", "Above ₦100,000", "52", "1.58", "20.8", "yes", "no", "2", "Rarely", "Strongly Agree", "A", "daily", "daily", "1x", "4-6x", "1x", "daily", "1x", "1x"},
		{"urban", "₦30,000 - ₦50,000", "45", "1.62", "17.1", "no", "no", "3", "Never", "Disagree", "D", "1x", "2-3X", "daily", "1x", "daily", "1x", "never", "occasionally"},
		{"urban", "Below ₦30,000", "41", "1.63", "15.4", "yes", "yes", "2", "Weekly", "Agree", "SA", "daily", "never", "occ", "never", "1x", "never", "1x", "daily"},
		{"rural", "Below ₦30,000", "40", "1.61", "15.4", "yes", "yes", "2", "Never", "SD", "Strongly Disagree", "1x", "daily", "never", "never", "occ", "never", "daily", "1x"},
		{"Rural", "Below ₦30,000", "42", "1.59", "16.6", "yes", "no", "1", "Rarely", "Strongly Disagree", "SD", "occ", "1x", "1x", "occasionally", "never", "occ", "daily", "never"},
		{"rural", "₦30,000 - ₦50,000", "55", "1.57", "22.3", "no", "no", "3", "Never", "Agree", "A", "daily", "daily", "1x", "1x", "1x", "1x", "1x", "1x"},
		{"rural", "Below ₦30,000", "39", "1.64", "14.5", "yes", "yes", "2", "Weekly", "Disagree", "D", "1x", "occ", "never", "never", "daily", "never", "daily", "daily"},
	}
	for i, p := range people {
		age := "10-13"
		if i%2 == 0 {
			age = "14-16"
		}
		tbl.AppendRow([]string{
			p.res, age, p.income, p.weight, p.height, p.bmi, p.skip, p.snack,
			p.meals, p.eatOut, p.avail, p.knowledge,
			p.rice, p.beans, p.fish, p.milk, p.tomato, p.orange, p.yam, p.biscuits,
		})
	}
	if _, err := prep.Run(tbl, prep.DefaultCatalog()); err != nil {
		t.Fatalf("prepare fixture: %v", err)
	}
	return tbl
}

func requireSheets(t *testing.T, path string, sheets ...string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	for _, sheet := range sheets {
		tbl, err := report.ReadSheet(path, sheet)
		if err != nil {
			t.Fatalf("read sheet %q: %v", sheet, err)
		}
		if len(tbl.Header) == 0 {
			t.Errorf("sheet %q has no header", sheet)
		}
	}
}

func TestSociodemographic(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Sociodemographic(tbl, dir); err != nil {
		t.Fatalf("Sociodemographic: %v", err)
	}
	requireSheets(t, filepath.Join(dir, "section_a_sociodemographic.xlsx"),
		"Descriptive Statistics", "Chi-Square Tests")
}

func TestAnthropometry(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Anthropometry(tbl, dir); err != nil {
		t.Fatalf("Anthropometry: %v", err)
	}
	path := filepath.Join(dir, "section_b_anthropometry.xlsx")
	requireSheets(t, path,
		"Descriptive Statistics", "T-Tests",
		"BMI Category Frequency", "BMI Category Percentage", "BMI Chi-Square Test")

	ttests, err := report.ReadSheet(path, "T-Tests")
	if err != nil {
		t.Fatalf("read t-tests: %v", err)
	}
	if len(ttests.Rows) == 0 {
		t.Fatal("t-test sheet has no rows")
	}
}

func TestDietary(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Dietary(tbl, prep.DefaultCatalog(), dir); err != nil {
		t.Fatalf("Dietary: %v", err)
	}
	path := filepath.Join(dir, "section_c_dietary_patterns.xlsx")
	requireSheets(t, path,
		"Food Group Consumption", "Chi-Square Tests", "DDS Descriptives", "DDS T-Test")

	scores, err := report.ReadSheet(path, "Food Group Consumption")
	if err != nil {
		t.Fatalf("read group scores: %v", err)
	}
	for _, row := range scores.Rows {
		mean, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			t.Fatalf("overall mean %q not numeric: %v", row[1], err)
		}
		if mean < 1 || mean > 6 {
			t.Errorf("group %s mean score %.2f outside coding range", row[0], mean)
		}
	}
}

func TestFactors(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Factors(tbl, dir); err != nil {
		t.Fatalf("Factors: %v", err)
	}
	path := filepath.Join(dir, "section_d_diet_factors.xlsx")
	requireSheets(t, path, "Descriptive Statistics", "Chi-Square Tests", "Correlations")

	corr, err := report.ReadSheet(path, "Correlations")
	if err != nil {
		t.Fatalf("read correlations: %v", err)
	}
	if len(corr.Rows) == 0 {
		t.Fatal("no factor correlations computed")
	}
	for _, row := range corr.Rows {
		if row[1] == "N/A" {
			continue
		}
		rho, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			t.Fatalf("rho %q not numeric: %v", row[1], err)
		}
		if rho < -1 || rho > 1 {
			t.Errorf("factor %s rho %.3f out of range", row[0], rho)
		}
	}
}

func TestLikertSeries(t *testing.T) {
	tbl := dataset.New([]string{"Food availability"})
	for _, v := range []string{"Strongly Agree", "SA", "Agree", "A", "Disagree", "D", "Strongly Disagree", "SD", "", "maybe"} {
		tbl.AppendRow([]string{v})
	}
	coded, rows := likertSeries(tbl, "Food availability")
	want := []float64{4, 4, 3, 3, 2, 2, 1, 1}
	if len(coded) != len(want) {
		t.Fatalf("coded %d values, want %d", len(coded), len(want))
	}
	for i, v := range want {
		if coded[i] != v {
			t.Errorf("coded[%d] = %v, want %v", i, coded[i], v)
		}
	}
	if rows[len(rows)-1] != 7 {
		t.Errorf("last coded row = %d, want 7", rows[len(rows)-1])
	}
}

func TestHabits(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Habits(tbl, dir); err != nil {
		t.Fatalf("Habits: %v", err)
	}
	requireSheets(t, filepath.Join(dir, "section_e_dietary_habits.xlsx"),
		"Descriptive Statistics", "Chi-Square Tests")
}

func TestAdvanced(t *testing.T) {
	tbl := testSnapshot(t)
	dir := t.TempDir()
	if err := Advanced(tbl, prep.DefaultCatalog(), dir); err != nil {
		t.Fatalf("Advanced: %v", err)
	}
	path := filepath.Join(dir, "advanced_analysis.xlsx")
	requireSheets(t, path, "Logistic Regression", "Model Performance", "Cluster Profiles")

	profiles, err := report.ReadSheet(path, "Cluster Profiles")
	if err != nil {
		t.Fatalf("read cluster profiles: %v", err)
	}
	if len(profiles.Rows) != clusterCount {
		t.Fatalf("got %d cluster rows, want %d", len(profiles.Rows), clusterCount)
	}
	total := 0
	for _, row := range profiles.Rows {
		n, err := strconv.Atoi(row[1])
		if err != nil {
			t.Fatalf("cluster size %q not numeric: %v", row[1], err)
		}
		total += n
	}
	if total != tbl.Len() {
		t.Errorf("cluster sizes sum to %d, want %d participants", total, tbl.Len())
	}
}

func TestRegressionDesign(t *testing.T) {
	tbl := testSnapshot(t)
	names, cases := regressionDesign(tbl)
	if len(names) != 4 {
		t.Fatalf("got predictors %v, want 4", names)
	}
	if len(cases) != tbl.Len() {
		t.Fatalf("got %d complete cases, want %d", len(cases), tbl.Len())
	}
	for _, c := range cases {
		if c.outcome != 0 && c.outcome != 1 {
			t.Errorf("outcome %v not binary", c.outcome)
		}
		res := c.features[0]
		if res != 0 && res != 1 {
			t.Errorf("residence code %v not binary", res)
		}
	}
}
