package prep

import (
	"fmt"
	"os"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/stats"
)

// Summary captures what the preparation pass produced, for the console and
// the summary file.
type Summary struct {
	Participants    int
	Urban           int
	Rural           int
	TextColumns     int
	CodedItems      int
	BMIDistribution map[Category]int
	DDS             stats.Summary
}

// Run executes the preparation pass on a loaded table, in order: normalize
// text, code frequencies, derive BMI columns, score DDS. The table is
// augmented in place; nothing is written to disk here.
func Run(t *dataset.Table, catalog Catalog) (*Summary, error) {
	if err := t.Validate(dataset.Required); err != nil {
		return nil, err
	}

	s := &Summary{
		Participants:    t.Len(),
		BMIDistribution: make(map[Category]int),
	}
	s.TextColumns = NormalizeText(t)

	coded, err := CodeFrequencies(t, catalog)
	if err != nil {
		return nil, fmt.Errorf("code frequencies: %w", err)
	}
	s.CodedItems = coded

	if err := DeriveBMI(t); err != nil {
		return nil, err
	}
	if err := ScoreDDS(t, catalog); err != nil {
		return nil, fmt.Errorf("score dds: %w", err)
	}

	for r := 0; r < t.Len(); r++ {
		s.BMIDistribution[Category(t.Cell(r, ColBMICategory))]++
		switch {
		case strings.EqualFold(t.Cell(r, "Residence"), "urban"):
			s.Urban++
		case strings.EqualFold(t.Cell(r, "Residence"), "rural"):
			s.Rural++
		}
	}
	s.DDS = stats.Describe(t.Floats(ColDDS))
	return s, nil
}

// WriteSummary writes the human-readable preparation summary file.
func (s *Summary) WriteSummary(path string) error {
	var b strings.Builder
	b.WriteString("DATA PREPARATION SUMMARY\n")
	b.WriteString(strings.Repeat("=", 80) + "\n\n")
	fmt.Fprintf(&b, "Total Participants: %d\n", s.Participants)
	fmt.Fprintf(&b, "Urban: %d\n", s.Urban)
	fmt.Fprintf(&b, "Rural: %d\n", s.Rural)
	fmt.Fprintf(&b, "Text Columns Standardized: %d\n", s.TextColumns)
	fmt.Fprintf(&b, "Food Items Coded: %d\n", s.CodedItems)
	b.WriteString("BMI Categories:\n")
	for _, cat := range Categories {
		if n, ok := s.BMIDistribution[cat]; ok {
			pct := 0.0
			if s.Participants > 0 {
				pct = float64(n) * 100 / float64(s.Participants)
			}
			fmt.Fprintf(&b, "  - %s: %d (%.1f%%)\n", cat, n, pct)
		}
	}
	fmt.Fprintf(&b, "Mean DDS: %.2f ± %.2f\n", s.DDS.Mean, s.DDS.SD)
	fmt.Fprintf(&b, "DDS Range: %.0f - %.0f\n", s.DDS.Min, s.DDS.Max)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
