package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads one sheet of an Excel workbook into a Table. An empty sheet
// name selects the first sheet in the workbook.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	t := New(rows[0])
	for _, row := range rows[1:] {
		t.AppendRow(row)
	}
	return t, nil
}
