package prep

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

func surveyTable() *dataset.Table {
	t := dataset.New([]string{
		"Residence", "BMI", "Weight (kg)", "Height (m)", "Rice", "Beans", "Mango",
	})
	// BMI 17.9 -> Underweight; Rice daily while the rest of Cereals is absent
	t.AppendRow([]string{"urban", "17.9", "48", "1.62", "Daily", "occ", "2-3X"})
	// missing BMI -> Unknown; nothing at weekly frequency
	t.AppendRow([]string{"RURAL", "", "51", "1.58", "never", "Occ", ""})
	t.AppendRow([]string{"rural", "26.2", "63", "1.55", "1x", "4-6X", "Daily"})
	return t
}

func TestRunEndToEnd(t *testing.T) {
	tab := surveyTable()
	s, err := Run(tab, DefaultCatalog())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := tab.Cell(0, ColBMICategory); got != "Underweight" {
		t.Fatalf("BMI 17.9 -> %q", got)
	}
	if got := tab.Cell(1, ColBMICategory); got != "Unknown" {
		t.Fatalf("missing BMI -> %q", got)
	}
	if got := tab.Cell(2, ColBMICategory); got != "Overweight" {
		t.Fatalf("BMI 26.2 -> %q", got)
	}

	// row 0: Cereals via Rice (6), Fruits via Mango (4); Legumes occ (2) does not count
	if got := tab.Cell(0, ColDDS); got != "2" {
		t.Fatalf("DDS[0] = %q, want 2", got)
	}
	// row 1: nothing reaches weekly consumption
	if got := tab.Cell(1, ColDDS); got != "0" {
		t.Fatalf("DDS[1] = %q, want 0", got)
	}
	// row 2: Rice 1x (3), Beans 4-6x (5), Mango daily (6)
	if got := tab.Cell(2, ColDDS); got != "3" {
		t.Fatalf("DDS[2] = %q, want 3", got)
	}

	if got := tab.Cell(1, "Residence"); got != "Rural" {
		t.Fatalf("Residence[1] = %q, want normalized Rural", got)
	}
	if s.Urban != 1 || s.Rural != 2 {
		t.Fatalf("residence split = %d urban / %d rural", s.Urban, s.Rural)
	}
	if s.CodedItems != 3 {
		t.Fatalf("coded items = %d, want 3", s.CodedItems)
	}
	if s.BMIDistribution[Unknown] != 1 {
		t.Fatalf("Unknown count = %d", s.BMIDistribution[Unknown])
	}
}

func TestRunFailsFastOnMissingRequiredColumn(t *testing.T) {
	tab := dataset.New([]string{"Residence", "BMI", "Weight (kg)"})
	tab.AppendRow([]string{"urban", "21", "50"})
	if _, err := Run(tab, DefaultCatalog()); err == nil {
		t.Fatal("expected a fatal schema error without Height (m)")
	} else if !strings.Contains(err.Error(), "Height (m)") {
		t.Fatalf("diagnostic should name the missing column: %v", err)
	}
}

func TestWriteSummary(t *testing.T) {
	tab := surveyTable()
	s, err := Run(tab, DefaultCatalog())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	path := filepath.Join(t.TempDir(), "data_preparation_summary.txt")
	if err := s.WriteSummary(path); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	out := string(b)
	for _, want := range []string{"Total Participants: 3", "Urban: 1", "Rural: 2", "Underweight: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
