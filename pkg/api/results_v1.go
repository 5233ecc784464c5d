// pkg/api/results_v1.go
package api

// EnrichmentRowV1 is the stable JSON/JSONL schema for enrichment
// results. Keep fields, names, and types stable. Add new fields only
// with ",omitempty".
type EnrichmentRowV1 struct {
	SetID       string  `json:"set_id"`
	Name        string  `json:"name,omitempty"`
	Source      string  `json:"source"` // "gsea" | "go" | "kegg"
	Size        int     `json:"size"`
	Hits        int     `json:"hits"`
	ES          float64 `json:"es,omitempty"`
	NES         float64 `json:"nes,omitempty"`
	LeadingEdge int     `json:"leading_edge,omitempty"`
	Odds        float64 `json:"odds,omitempty"`
	PValue      float64 `json:"p_value"`
	AdjPValue   float64 `json:"adj_p_value"`
	RunID       string  `json:"run_id,omitempty"`
}

// RankEntryV1 is the stable schema for ranked-gene output.
type RankEntryV1 struct {
	GeneID string  `json:"gene_id"`
	Score  float64 `json:"score"`
}
