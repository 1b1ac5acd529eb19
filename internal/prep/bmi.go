package prep

import (
	"fmt"
	"math"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

// Category is a discrete BMI bin.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
	Unknown     Category = "Unknown"
)

// Categories lists the bins in reporting order.
var Categories = []Category{Underweight, Normal, Overweight, Obese, Unknown}

// BMI column names observable to downstream consumers.
const (
	ColBMI         = "BMI"
	ColBMIFinal    = "BMI_final"
	ColBMICategory = "BMI_category"
)

// CategorizeBMI bins a BMI value using the WHO cutoffs. The bins are
// half-open and lower-bound inclusive, so every value on the extended real
// line lands in exactly one bin; NaN is not orderable and maps to Unknown.
func CategorizeBMI(bmi float64) Category {
	switch {
	case math.IsNaN(bmi):
		return Unknown
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// CategorizeBMICell classifies a raw cell: missing or non-numeric values are
// Unknown, never another category.
func CategorizeBMICell(cell string) Category {
	f, ok := dataset.Float(cell)
	if !ok {
		return Unknown
	}
	return CategorizeBMI(f)
}

// DeriveBMI appends BMI_final (the coerced numeric value) and BMI_category.
// Malformed BMI text coerces to missing; the category column is always
// populated, with Unknown standing in for missing.
func DeriveBMI(t *dataset.Table) error {
	if !t.HasColumn(ColBMI) {
		return fmt.Errorf("derive bmi: %w", &dataset.MissingColumnError{Column: ColBMI})
	}
	final := make([]string, t.Len())
	category := make([]string, t.Len())
	for r := 0; r < t.Len(); r++ {
		cell := t.Cell(r, ColBMI)
		if f, ok := dataset.Float(cell); ok && !math.IsNaN(f) {
			final[r] = dataset.FormatFloat(f)
		}
		category[r] = string(CategorizeBMICell(cell))
	}
	if err := t.AddColumn(ColBMIFinal, final); err != nil {
		return err
	}
	return t.AddColumn(ColBMICategory, category)
}
