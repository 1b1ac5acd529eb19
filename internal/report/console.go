package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes a result table to the console.
func Render(w io.Writer, tbl Table) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(tbl.Header)
	t.SetAutoWrapText(false)
	t.AppendBulk(tbl.Rows)
	t.Render()
}
