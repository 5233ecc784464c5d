// core/rank/rank.go
package rank

import (
	"fmt"
	"math"
	"sort"

	"enrich-core/detable"
)

// Policy selects how the per-gene score is derived from a DE record.
type Policy string

const (
	// PolicyLogFC ranks by the raw signed fold change.
	PolicyLogFC Policy = "logfc"
	// PolicySignedP ranks by -log10(p) * sign(logFC).
	PolicySignedP Policy = "signedp"
)

// Vector is a ranking: a score per gene plus the deterministic
// descending order used by the preranked test. Ties in score are broken
// by gene identifier ascending.
type Vector struct {
	Score map[string]float64
	Order []string
}

// smallest p-value admitted before -log10 overflows usefulness; p==0
// from the caller's table clamps here.
const minP = 1e-300

// Build derives a Vector from a loaded table under the given policy.
// Records whose score field is NaN are skipped.
func Build(t *detable.Table, p Policy) (Vector, error) {
	v := Vector{Score: make(map[string]float64, len(t.Records))}
	for _, r := range t.Records {
		var s float64
		switch p {
		case PolicyLogFC:
			s = r.LogFC
		case PolicySignedP:
			pv := r.PValue
			if pv < minP {
				pv = minP
			}
			s = -math.Log10(pv) * sign(r.LogFC)
		default:
			return Vector{}, fmt.Errorf("unknown rank policy %q", p)
		}
		if math.IsNaN(s) {
			continue
		}
		v.Score[r.GeneID] = s
		v.Order = append(v.Order, r.GeneID)
	}
	sortDescending(&v)
	return v, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func sortDescending(v *Vector) {
	sort.Slice(v.Order, func(i, j int) bool {
		a, b := v.Order[i], v.Order[j]
		if v.Score[a] != v.Score[b] {
			return v.Score[a] > v.Score[b]
		}
		return a < b
	})
}
