// core/gsea/gsea.go
package gsea

import (
	"sort"

	"enrich-core/rank"
)

// Config controls the preranked test.
type Config struct {
	MinSize      int   // smallest usable set after restriction to the ranking
	MaxSize      int   // largest usable set; 0 = unbounded
	Permutations int   // gene-label permutations per set
	Seed         int64 // base RNG seed; per-set streams are derived from it
}

// Result is the per-set outcome of the preranked test.
type Result struct {
	Set         string
	Size        int // members named by the set
	Hits        int // members present in the ranking
	LeadingEdge int // hits at or before (after, for ES<0) the ES extremum
	ES          float64
	NES         float64
	P           float64
	FDR         float64 // filled by FinishFDR over the whole batch
}

// Scorer evaluates gene sets against one fixed ranking. Score is safe
// for concurrent use; each call derives its own RNG stream.
type Scorer struct {
	cfg    Config
	weight []float64 // |score| by rank position
	index  map[string]int
}

func New(cfg Config, v rank.Vector) *Scorer {
	if cfg.Permutations <= 0 {
		cfg.Permutations = 1000
	}
	if cfg.MinSize <= 0 {
		cfg.MinSize = 1
	}
	s := &Scorer{
		cfg:    cfg,
		weight: make([]float64, len(v.Order)),
		index:  make(map[string]int, len(v.Order)),
	}
	for i, id := range v.Order {
		s.index[id] = i
		w := v.Score[id]
		if w < 0 {
			w = -w
		}
		s.weight[i] = w
	}
	return s
}

// Score runs the preranked test for one set. ok is false when the set's
// overlap with the ranking falls outside the configured size bounds.
func (s *Scorer) Score(name string, members []string) (Result, bool) {
	pos := make([]int, 0, len(members))
	for _, g := range members {
		if i, ok := s.index[g]; ok {
			pos = append(pos, i)
		}
	}
	if len(pos) < s.cfg.MinSize {
		return Result{}, false
	}
	if s.cfg.MaxSize > 0 && len(pos) > s.cfg.MaxSize {
		return Result{}, false
	}
	sort.Ints(pos)

	es, lead := s.walk(pos)
	res := Result{
		Set:         name,
		Size:        len(members),
		Hits:        len(pos),
		LeadingEdge: lead,
		ES:          es,
	}
	res.NES, res.P = s.permute(name, len(pos), es)
	return res, true
}

// walk computes the weighted (p=1) running-sum enrichment score over
// the sorted hit positions and the leading-edge hit count.
func (s *Scorer) walk(pos []int) (es float64, leading int) {
	n := len(s.weight)
	nh := len(pos)
	if nh == n {
		return 1, nh
	}

	var nr float64
	for _, p := range pos {
		nr += s.weight[p]
	}

	miss := 1 / float64(n-nh)
	run := 0.0
	prev := -1
	var maxES, minES float64
	maxAt, minAt := 0, 0
	for i, p := range pos {
		run -= float64(p-prev-1) * miss
		if run < minES {
			minES = run
			minAt = i
		}
		if nr > 0 {
			run += s.weight[p] / nr
		} else {
			// Degenerate all-zero ranking: fall back to equal hit weights.
			run += 1 / float64(nh)
		}
		if run > maxES {
			maxES = run
			maxAt = i
		}
		prev = p
	}
	run -= float64(n-1-prev) * miss
	if run < minES {
		minES = run
		minAt = nh
	}

	if maxES >= -minES {
		return maxES, maxAt + 1
	}
	return minES, nh - minAt
}
