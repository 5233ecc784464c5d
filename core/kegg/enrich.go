// core/kegg/enrich.go
package kegg

import (
	"enrich-core/geneset"
	"enrich-core/stats"
)

// Config bounds which pathways are tested.
type Config struct {
	MinSize int
	MaxSize int // 0 = unbounded
}

// Result is the per-pathway over-representation outcome.
type Result struct {
	Pathway string
	Name    string
	Size    int // pathway genes inside the universe
	Hits    int // significant genes on the pathway
	P       float64
	FDR     float64
}

// Enrich tests a significant-gene list against pathways derived from
// link data. The universe is every gene with at least one pathway
// annotation. Significant genes absent from the universe are ignored
// and counted in missing.
func Enrich(sig []string, gene2path map[string][]string, names map[string]string, cfg Config) (results []Result, missing int) {
	if cfg.MinSize <= 0 {
		cfg.MinSize = 1
	}

	universe := make(map[string]struct{}, len(gene2path))
	for g := range gene2path {
		universe[g] = struct{}{}
	}

	sigSet := make(map[string]struct{}, len(sig))
	for _, g := range sig {
		if _, ok := universe[g]; !ok {
			missing++
			continue
		}
		sigSet[g] = struct{}{}
	}

	paths := geneset.FromMembership(gene2path).Filter(universe, cfg.MinSize, cfg.MaxSize)
	N := len(universe)
	k := len(sigSet)

	for _, id := range paths.Names {
		members := paths.Sets[id]
		hits := 0
		for _, g := range members {
			if _, ok := sigSet[g]; ok {
				hits++
			}
		}
		results = append(results, Result{
			Pathway: id,
			Name:    names[id],
			Size:    len(members),
			Hits:    hits,
			P:       stats.HypergeomUpperTail(hits, len(members), k, N),
		})
	}

	p := make([]float64, len(results))
	for i := range results {
		p[i] = results[i].P
	}
	adj := stats.AdjustBH(p)
	for i := range results {
		results[i].FDR = adj[i]
	}
	return results, missing
}
