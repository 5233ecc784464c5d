// internal/common/sort.go
package common

import (
	"math"
	"sort"

	"enrich/pkg/api"
)

// LessRow defines the stable result order used by --sort: adjusted p
// ascending, then the stronger normalized statistic, then set id.
func LessRow(a, b api.EnrichmentRowV1) bool {
	if a.AdjPValue != b.AdjPValue {
		return a.AdjPValue < b.AdjPValue
	}
	if an, bn := math.Abs(a.NES), math.Abs(b.NES); an != bn {
		return an > bn
	}
	return a.SetID < b.SetID
}

func SortRows(rows []api.EnrichmentRowV1) {
	sort.Slice(rows, func(i, j int) bool { return LessRow(rows[i], rows[j]) })
}

// TopN truncates rows to the strongest n entries. n <= 0 keeps all.
// Rows must already be sorted.
func TopN(rows []api.EnrichmentRowV1, n int) []api.EnrichmentRowV1 {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
