// core/rank/filter.go
package rank

import (
	"math"

	"enrich-core/detable"
)

// Thresholds gate which genes count as significant. A record passes
// when FDR < MaxFDR and |logFC| > MinAbsLogFC.
type Thresholds struct {
	MaxFDR      float64
	MinAbsLogFC float64
}

func (th Thresholds) pass(r detable.Record) bool {
	if math.IsNaN(r.FDR) || r.FDR >= th.MaxFDR {
		return false
	}
	return math.Abs(r.LogFC) > th.MinAbsLogFC
}

// Significant returns the identifiers passing th, in table order.
func Significant(t *detable.Table, th Thresholds) []string {
	var out []string
	for _, r := range t.Records {
		if th.pass(r) {
			out = append(out, r.GeneID)
		}
	}
	return out
}

// Flags builds the binary significance vector consumed by the
// length-bias-corrected test: 1 when the record passes th, else 0.
func Flags(t *detable.Table, th Thresholds) map[string]int {
	m := make(map[string]int, len(t.Records))
	for _, r := range t.Records {
		if th.pass(r) {
			m[r.GeneID] = 1
		} else {
			m[r.GeneID] = 0
		}
	}
	return m
}
