package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an in-memory tabular dataset: an ordered header plus rows of
// string cells. The empty string is the missing marker throughout the
// pipeline; every numeric access goes through Float so malformed values
// degrade to missing instead of erroring.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// New creates a table with the given header and no rows.
func New(header []string) *Table {
	t := &Table{
		header: append([]string(nil), header...),
		index:  make(map[string]int, len(header)),
	}
	for i, name := range t.header {
		t.header[i] = strings.TrimRight(name, "\r")
		if _, dup := t.index[t.header[i]]; !dup {
			t.index[t.header[i]] = i
		}
	}
	return t
}

// AppendRow adds a row, padding or truncating it to the header width.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.header...)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value at (row, column). Absent columns and out-of-range
// rows read as missing.
func (t *Table) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][i]
}

// SetCell overwrites the value at (row, column). Unknown columns are ignored.
func (t *Table) SetCell(row int, column, value string) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return
	}
	t.rows[row][i] = value
}

// AddColumn appends a derived column. The number of values must match the
// row count; a duplicate name is an error.
func (t *Table) AddColumn(name string, values []string) error {
	if _, dup := t.index[name]; dup {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(values) != len(t.rows) {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(t.rows))
	}
	t.index[name] = len(t.header)
	t.header = append(t.header, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], values[i])
	}
	return nil
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.rows))
	for r := range t.rows {
		out[r] = t.rows[r][i]
	}
	return out, true
}

// Record returns row r as a column-name keyed map. The map is a copy; writes
// to it do not touch the table.
func (t *Table) Record(r int) map[string]string {
	rec := make(map[string]string, len(t.header))
	if r < 0 || r >= len(t.rows) {
		return rec
	}
	for name, i := range t.index {
		rec[name] = t.rows[r][i]
	}
	return rec
}

// Floats returns the non-missing numeric values of a column.
func (t *Table) Floats(name string) []float64 {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(t.rows))
	for r := range t.rows {
		if f, ok := Float(t.rows[r][i]); ok {
			out = append(out, f)
		}
	}
	return out
}

// Float coerces a cell to a number. Missing or malformed values report
// ok=false; they never error.
func Float(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatFloat renders a number back into a cell using the shortest exact
// representation.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
