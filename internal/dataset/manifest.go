package dataset

import "fmt"

// Required lists the columns every downstream statistic depends on. Their
// absence is a configuration error, caught once at load time instead of
// wherever a lookup happens to fail first.
var Required = []string{
	"Residence",
	"BMI",
	"Weight (kg)",
	"Height (m)",
}

// MissingColumnError reports a required column absent from the input.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q is missing from the dataset", e.Column)
}

// Validate checks the table against a required-column manifest. Optional
// columns are not listed; their absence is tolerated everywhere.
func (t *Table) Validate(required []string) error {
	for _, name := range required {
		if !t.HasColumn(name) {
			return &MissingColumnError{Column: name}
		}
	}
	return nil
}
