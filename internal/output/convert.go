// internal/output/convert.go
package output

import (
	"enrich-core/gsea"
	"enrich-core/kegg"
	"enrich-core/lengthbias"
	"enrich/pkg/api"
)

// Converters to the stable wire schema (v1), one per runner.

func FromGSEA(r gsea.Result, runID string) api.EnrichmentRowV1 {
	return api.EnrichmentRowV1{
		SetID:       r.Set,
		Source:      "gsea",
		Size:        r.Size,
		Hits:        r.Hits,
		ES:          r.ES,
		NES:         r.NES,
		LeadingEdge: r.LeadingEdge,
		PValue:      r.P,
		AdjPValue:   r.FDR,
		RunID:       runID,
	}
}

func FromLengthBias(r lengthbias.Result, runID string) api.EnrichmentRowV1 {
	return api.EnrichmentRowV1{
		SetID:     r.Category,
		Source:    "go",
		Size:      r.Size,
		Hits:      r.DEHits,
		Odds:      r.Odds,
		PValue:    r.P,
		AdjPValue: r.FDR,
		RunID:     runID,
	}
}

func FromKEGG(r kegg.Result, runID string) api.EnrichmentRowV1 {
	return api.EnrichmentRowV1{
		SetID:     r.Pathway,
		Name:      r.Name,
		Source:    "kegg",
		Size:      r.Size,
		Hits:      r.Hits,
		PValue:    r.P,
		AdjPValue: r.FDR,
		RunID:     runID,
	}
}
