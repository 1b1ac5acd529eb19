// Package sections implements the survey's analysis sections. Every section
// reads the prepared snapshot, compares urban against rural respondents, and
// writes one results workbook plus charts under the results directory. The
// snapshot is treated as read-only; rows with missing values drop out of
// each test individually (complete-case handling).
package sections

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/report"
	"github.com/vivianokoye/nutristat/internal/stats"
)

// Variable pairs a snapshot column with the label used in result tables.
// Several survey columns carry stray spaces or parenthetical hints; the
// label is the clean presentation name.
type Variable struct {
	Column string
	Label  string
}

const (
	colResidence = "Residence"

	residenceUrban = "Urban"
	residenceRural = "Rural"
)

// residenceOf canonicalizes a row's residence. Matching is case-insensitive:
// the snapshot is normally title-cased by preparation, but sections must not
// fragment groups if handed a raw export.
func residenceOf(t *dataset.Table, r int) string {
	v := strings.TrimSpace(t.Cell(r, colResidence))
	switch {
	case strings.EqualFold(v, residenceUrban):
		return residenceUrban
	case strings.EqualFold(v, residenceRural):
		return residenceRural
	default:
		return ""
	}
}

// splitFloats collects a numeric column's non-missing values per residence.
func splitFloats(t *dataset.Table, column string) (urban, rural []float64) {
	for r := 0; r < t.Len(); r++ {
		f, ok := dataset.Float(t.Cell(r, column))
		if !ok {
			continue
		}
		switch residenceOf(t, r) {
		case residenceUrban:
			urban = append(urban, f)
		case residenceRural:
			rural = append(rural, f)
		}
	}
	return urban, rural
}

// categoryCount is one row of a frequency table.
type categoryCount struct {
	value   string
	overall int
	urban   int
	rural   int
}

// countCategories tallies a categorical column overall and per residence,
// most frequent first. Missing values are excluded.
func countCategories(t *dataset.Table, column string) []categoryCount {
	byValue := map[string]*categoryCount{}
	var order []string
	for r := 0; r < t.Len(); r++ {
		v := strings.TrimSpace(t.Cell(r, column))
		if v == "" {
			continue
		}
		cc := byValue[v]
		if cc == nil {
			cc = &categoryCount{value: v}
			byValue[v] = cc
			order = append(order, v)
		}
		cc.overall++
		switch residenceOf(t, r) {
		case residenceUrban:
			cc.urban++
		case residenceRural:
			cc.rural++
		}
	}
	out := make([]categoryCount, 0, len(order))
	for _, v := range order {
		out = append(out, *byValue[v])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].overall != out[j].overall {
			return out[i].overall > out[j].overall
		}
		return out[i].value < out[j].value
	})
	return out
}

// residenceTotals counts respondents with a recognized residence.
func residenceTotals(t *dataset.Table) (urban, rural int) {
	for r := 0; r < t.Len(); r++ {
		switch residenceOf(t, r) {
		case residenceUrban:
			urban++
		case residenceRural:
			rural++
		}
	}
	return urban, rural
}

// frequencyTable builds the overall/urban/rural frequency-percentage table
// the original sections all share.
func frequencyTable(t *dataset.Table, vars []Variable, varHeader, catHeader string) report.Table {
	urbanN, ruralN := residenceTotals(t)
	tbl := report.Table{
		Name: "Descriptive Statistics",
		Header: []string{
			varHeader, catHeader,
			"Overall_n", "Overall_%", "Urban_n", "Urban_%", "Rural_n", "Rural_%",
		},
	}
	total := t.Len()
	for _, v := range vars {
		if !t.HasColumn(v.Column) {
			continue
		}
		for _, cc := range countCategories(t, v.Column) {
			tbl.Rows = append(tbl.Rows, []string{
				v.Label, cc.value,
				strconv.Itoa(cc.overall), pct(cc.overall, total),
				strconv.Itoa(cc.urban), pct(cc.urban, urbanN),
				strconv.Itoa(cc.rural), pct(cc.rural, ruralN),
			})
		}
	}
	return tbl
}

// contingency builds the category-by-residence count table for a column.
func contingency(t *dataset.Table, column string) [][]float64 {
	var obs [][]float64
	for _, cc := range countCategories(t, column) {
		obs = append(obs, []float64{float64(cc.urban), float64(cc.rural)})
	}
	return obs
}

// chiSquareBattery runs a chi-square test of each variable against
// residence. A variable whose table cannot support the test is reported as
// not computable rather than dropped.
func chiSquareBattery(t *dataset.Table, vars []Variable, varHeader string) report.Table {
	tbl := report.Table{
		Name:   "Chi-Square Tests",
		Header: []string{varHeader, "Chi-square", "df", "p-value", "Significance", "Interpretation"},
	}
	for _, v := range vars {
		if !t.HasColumn(v.Column) {
			continue
		}
		res, err := stats.ChiSquare(contingency(t, v.Column))
		if err != nil {
			tbl.Rows = append(tbl.Rows, []string{v.Label, "N/A", "N/A", "N/A", "N/A", "Could not compute"})
			continue
		}
		tbl.Rows = append(tbl.Rows, []string{
			v.Label,
			f3(res.Chi2), strconv.Itoa(res.DF), p4(res.P),
			stats.Stars(res.P), stats.Interpret(res.P),
		})
	}
	return tbl
}

// describeRows renders Overall/Urban/Rural descriptive rows for one numeric
// variable.
func describeRows(t *dataset.Table, column, label string) [][]string {
	urban, rural := splitFloats(t, column)
	overall := t.Floats(column)
	var rows [][]string
	for _, g := range []struct {
		name string
		vals []float64
	}{
		{"Overall", overall},
		{residenceUrban, urban},
		{residenceRural, rural},
	} {
		s := stats.Describe(g.vals)
		rows = append(rows, []string{
			label, g.name, strconv.Itoa(s.N),
			f2(s.Mean), f2(s.SD), f2(s.Min), f2(s.Max), f2(s.Median),
		})
	}
	return rows
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func pct(n, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(n)*100/float64(total), 'f', 1, 64)
}

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func f3(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
func p4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
