// core/detable/record.go
package detable

// Record is one row of a precomputed differential-expression table.
type Record struct {
	GeneID string
	LogFC  float64
	PValue float64
	FDR    float64
	Length float64 // median transcript length (bp); NaN when absent
}

// Table holds the loaded rows plus the bookkeeping counters callers
// report as warnings.
type Table struct {
	Records    []Record
	MissingIDs int // rows dropped for an empty/NA identifier
	Duplicates int // rows dropped because the identifier was already seen
}

// Lengths returns the per-gene length covariate, skipping genes with no
// recorded length.
func (t *Table) Lengths() map[string]float64 {
	m := make(map[string]float64, len(t.Records))
	for _, r := range t.Records {
		if r.Length == r.Length { // not NaN
			m[r.GeneID] = r.Length
		}
	}
	return m
}
