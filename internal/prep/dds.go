package prep

import (
	"strconv"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

// ColDDS is the derived Dietary Diversity Score column.
const ColDDS = "DDS"

// DDS computes the Dietary Diversity Score for one participant record: the
// number of food groups with at least one member item whose coded frequency
// is present and at least weekly (code >= 3). A group with every item code
// missing contributes 0. The result depends only on the record and the
// catalog; group and item order do not matter and the record is not mutated.
func DDS(record map[string]string, catalog Catalog) int {
	score := 0
	for _, group := range catalog.Groups() {
		for _, item := range group.Items {
			cell, ok := record[CodedColumn(item)]
			if !ok {
				continue
			}
			if code, ok := dataset.Float(cell); ok && code >= FreqWeekly {
				score++
				break
			}
		}
	}
	return score
}

// ScoreDDS appends the DDS column, scoring each record independently.
func ScoreDDS(t *dataset.Table, catalog Catalog) error {
	values := make([]string, t.Len())
	for r := 0; r < t.Len(); r++ {
		values[r] = strconv.Itoa(DDS(t.Record(r), catalog))
	}
	return t.AddColumn(ColDDS, values)
}
