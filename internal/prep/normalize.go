package prep

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

// TextColumns are the free-text survey fields canonicalized before any
// grouping. Data entry was inconsistent ("yes"/"Yes"/"YES"); without a
// canonical form the chi-square categories silently fragment.
var TextColumns = []string{
	"Do you skip meals",
	"Prefer snacks over food? (Yes/No)",
	"Residence",
	"Living With",
	"Marital Status of Parents",
	"Religion",
	"Ethnic Group",
	"Which meal skipped",
	"Reason for skipping meals",
	"Source of food",
	"Reason for snack preference",
}

// NormalizeText trims and title-cases every listed column that is present,
// in place. A value that canonicalizes to the literal "Nan" is a stringified
// missing value and is restored to a true missing marker. Returns the number
// of columns touched.
func NormalizeText(t *dataset.Table) int {
	return NormalizeColumns(t, TextColumns)
}

// NormalizeColumns normalizes an explicit column list; absent columns are
// skipped without error.
func NormalizeColumns(t *dataset.Table, columns []string) int {
	caser := cases.Title(language.English)
	n := 0
	for _, col := range columns {
		if !t.HasColumn(col) {
			continue
		}
		for r := 0; r < t.Len(); r++ {
			t.SetCell(r, col, normalizeValue(caser, t.Cell(r, col)))
		}
		n++
	}
	return n
}

func normalizeValue(caser cases.Caser, v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	s = caser.String(s)
	if s == "Nan" {
		return ""
	}
	return s
}
