package prep

import (
	"math"
	"strconv"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

// Ordinal frequency codes. Monotonic with consumption intensity.
const (
	FreqNever      = 1
	FreqOccasional = 2
	FreqWeekly     = 3
	Freq2To3Weekly = 4
	Freq4To6Weekly = 5
	FreqDaily      = 6
)

// frequencyCodes maps the survey instrument's textual encodings, lowercased,
// to ordinal codes. Matching is case-insensitive and tolerates the × and
// en-dash variants that appear in the questionnaire labels.
var frequencyCodes = map[string]int{
	"never":        FreqNever,
	"0x":           FreqNever,
	"occ":          FreqOccasional,
	"occasional":   FreqOccasional,
	"occasionally": FreqOccasional,
	"1x":           FreqWeekly,
	"2-3x":         Freq2To3Weekly,
	"4-6x":         Freq4To6Weekly,
	"daily":        FreqDaily,
}

// CodeFrequency maps a raw frequency response to an ordinal code in 1..6.
// Textual synonyms are consulted first; a value that fails the synonym table
// is accepted as an already-numeric code only if it is an integer in 1..6.
// Everything else is missing (ok=false), never an error.
func CodeFrequency(raw string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "×", "x") // ×
	s = strings.ReplaceAll(s, "–", "-") // –
	if code, ok := frequencyCodes[s]; ok {
		return code, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == math.Trunc(f) && f >= FreqNever && f <= FreqDaily {
			return int(f), true
		}
	}
	return 0, false
}

// CodeFrequencies appends one "<item>_coded" column per catalog item present
// in the table. Items whose column is absent are skipped; no placeholder
// column is synthesized. Returns the number of items coded.
func CodeFrequencies(t *dataset.Table, catalog Catalog) (int, error) {
	coded := 0
	for _, item := range catalog.Items() {
		if !t.HasColumn(item) {
			continue
		}
		values := make([]string, t.Len())
		for r := 0; r < t.Len(); r++ {
			if code, ok := CodeFrequency(t.Cell(r, item)); ok {
				values[r] = strconv.Itoa(code)
			}
		}
		if err := t.AddColumn(CodedColumn(item), values); err != nil {
			return coded, err
		}
		coded++
	}
	return coded, nil
}
