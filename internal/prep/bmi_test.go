package prep

import (
	"math"
	"testing"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

func TestCategorizeBMIBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want Category
	}{
		{17.9, Underweight},
		{18.49999, Underweight},
		{18.5, Normal},
		{24.9999, Normal},
		{25, Overweight},
		{29.9999, Overweight},
		{30, Obese},
		{55, Obese},
		{0, Underweight},
		{-1, Underweight},
		{math.Inf(-1), Underweight},
		{math.Inf(1), Obese},
		{math.NaN(), Unknown},
	}
	for _, c := range cases {
		if got := CategorizeBMI(c.bmi); got != c.want {
			t.Errorf("CategorizeBMI(%v) = %s, want %s", c.bmi, got, c.want)
		}
	}
}

func TestCategorizeBMICell(t *testing.T) {
	if got := CategorizeBMICell(""); got != Unknown {
		t.Fatalf("missing -> %s, want Unknown", got)
	}
	if got := CategorizeBMICell("not a number"); got != Unknown {
		t.Fatalf("malformed -> %s, want Unknown", got)
	}
	if got := CategorizeBMICell("17.9"); got != Underweight {
		t.Fatalf("17.9 -> %s, want Underweight", got)
	}
}

func TestDeriveBMI(t *testing.T) {
	tab := dataset.New([]string{"BMI"})
	tab.AppendRow([]string{"17.9"})
	tab.AppendRow([]string{""})
	tab.AppendRow([]string{"garbage"})
	tab.AppendRow([]string{"30"})

	if err := DeriveBMI(tab); err != nil {
		t.Fatalf("DeriveBMI: %v", err)
	}
	if got := tab.Cell(0, ColBMICategory); got != "Underweight" {
		t.Fatalf("BMI 17.9 -> %q", got)
	}
	if got := tab.Cell(1, ColBMICategory); got != "Unknown" {
		t.Fatalf("missing BMI -> %q", got)
	}
	if got := tab.Cell(2, ColBMIFinal); got != "" {
		t.Fatalf("malformed BMI should coerce to missing, got %q", got)
	}
	if got := tab.Cell(2, ColBMICategory); got != "Unknown" {
		t.Fatalf("malformed BMI -> %q", got)
	}
	if got := tab.Cell(3, ColBMICategory); got != "Obese" {
		t.Fatalf("BMI 30 -> %q", got)
	}
	if got := tab.Cell(0, ColBMIFinal); got != "17.9" {
		t.Fatalf("BMI_final[0] = %q", got)
	}
}

func TestDeriveBMIMissingColumn(t *testing.T) {
	tab := dataset.New([]string{"Weight (kg)"})
	if err := DeriveBMI(tab); err == nil {
		t.Fatal("expected an error without a BMI column")
	}
}
