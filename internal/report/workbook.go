package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is one result table destined for a workbook sheet, a console
// rendering, or the compiled report.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteWorkbook writes each table to its own sheet of a new xlsx workbook.
func WriteWorkbook(path string, tables []Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("write workbook %s: no tables", path)
	}
	f := excelize.NewFile()
	defer f.Close()

	for _, tbl := range tables {
		if _, err := f.NewSheet(tbl.Name); err != nil {
			return fmt.Errorf("new sheet %q: %w", tbl.Name, err)
		}
		if err := writeSheet(f, tbl); err != nil {
			return err
		}
	}
	// the default sheet serves no table
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, tbl Table) error {
	for j, h := range tbl.Header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", tbl.Name, err)
		}
		if err := f.SetCellValue(tbl.Name, cell, h); err != nil {
			return fmt.Errorf("sheet %q: %w", tbl.Name, err)
		}
	}
	for i, row := range tbl.Rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", tbl.Name, err)
			}
			if err := f.SetCellValue(tbl.Name, cell, v); err != nil {
				return fmt.Errorf("sheet %q: %w", tbl.Name, err)
			}
		}
	}
	return nil
}

// ReadSheet loads one sheet of a results workbook back into a Table. The
// compile stage uses it to gather every section's findings.
func ReadSheet(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{Name: sheet}, nil
	}
	t := Table{Name: sheet, Header: rows[0]}
	for _, row := range rows[1:] {
		padded := make([]string, len(t.Header))
		copy(padded, row)
		t.Rows = append(t.Rows, padded)
	}
	return t, nil
}
