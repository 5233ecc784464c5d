// core/lengthbias/overrep.go
package lengthbias

import (
	"fmt"
	"math/rand"
	"sort"

	"enrich-core/geneset"
	"enrich-core/stats"
	"gonum.org/v1/gonum/stat"
)

// Methods for the category p-value.
const (
	MethodFisher         = "fisher"   // Fisher noncentral null, odds from the PWF
	MethodSampling       = "sampling" // Monte Carlo weighted draws
	MethodHypergeometric = "hypergeometric"
)

// Config controls the length-bias-corrected over-representation test.
type Config struct {
	Bins       int    // length bins for the PWF fit
	Method     string // MethodFisher | MethodSampling | MethodHypergeometric
	Iterations int    // sampling iterations (MethodSampling)
	Seed       int64
	MinSize    int
	MaxSize    int // 0 = unbounded
}

// Result is the per-category outcome.
type Result struct {
	Category string
	Size     int // category members inside the scored universe
	DEHits   int
	Odds     float64 // PWF odds ratio (1 for the central method)
	P        float64
	FDR      float64
}

// Test runs the over-representation test for every category. The
// universe is every gene carrying both a significance flag and a
// length; genes lacking a length are dropped and counted in dropped.
func Test(flags map[string]int, lengths map[string]float64, cats *geneset.Collection, cfg Config) (results []Result, dropped int, err error) {
	if cfg.Method == "" {
		cfg.Method = MethodFisher
	}
	switch cfg.Method {
	case MethodFisher, MethodSampling, MethodHypergeometric:
	default:
		return nil, 0, fmt.Errorf("lengthbias: unknown method %q", cfg.Method)
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 2000
	}
	if cfg.MinSize <= 0 {
		cfg.MinSize = 1
	}

	genes := make([]string, 0, len(flags))
	for g := range flags {
		if _, ok := lengths[g]; !ok {
			dropped++
			continue
		}
		genes = append(genes, g)
	}
	if len(genes) == 0 {
		return nil, dropped, fmt.Errorf("lengthbias: no genes with both a flag and a length")
	}
	sort.Strings(genes)

	lens := make([]float64, len(genes))
	de := make([]int, len(genes))
	index := make(map[string]int, len(genes))
	totalDE := 0
	for i, g := range genes {
		lens[i] = lengths[g]
		de[i] = flags[g]
		totalDE += flags[g]
		index[g] = i
	}

	pwf, err := FitPWF(lens, de, cfg.Bins)
	if err != nil {
		return nil, dropped, err
	}

	universe := make(map[string]struct{}, len(genes))
	for _, g := range genes {
		universe[g] = struct{}{}
	}
	kept := cats.Filter(universe, cfg.MinSize, cfg.MaxSize)

	N := len(genes)
	var sampler *nullSampler
	if cfg.Method == MethodSampling {
		sampler = newNullSampler(rand.New(rand.NewSource(cfg.Seed)), pwf, totalDE, cfg.Iterations)
	}

	for _, name := range kept.Names {
		members := kept.Sets[name]
		inCat := make([]bool, N)
		hits := 0
		for _, g := range members {
			i := index[g]
			inCat[i] = true
			hits += de[i]
		}
		res := Result{Category: name, Size: len(members), DEHits: hits, Odds: 1}

		switch cfg.Method {
		case MethodFisher:
			res.Odds = pwfOdds(pwf, inCat)
			res.P = NoncentralTail(hits, len(members), totalDE, N, res.Odds)
		case MethodHypergeometric:
			res.P = stats.HypergeomUpperTail(hits, len(members), totalDE, N)
		case MethodSampling:
			res.P = sampler.tail(inCat, hits)
		}
		results = append(results, res)
	}

	p := make([]float64, len(results))
	for i := range results {
		p[i] = results[i].P
	}
	adj := stats.AdjustBH(p)
	for i := range results {
		results[i].FDR = adj[i]
	}
	return results, dropped, nil
}

// pwfOdds is meanPWF(category) / meanPWF(rest).
func pwfOdds(pwf []float64, inCat []bool) float64 {
	var in, out []float64
	for i, w := range pwf {
		if inCat[i] {
			in = append(in, w)
		} else {
			out = append(out, w)
		}
	}
	if len(in) == 0 || len(out) == 0 {
		return 1
	}
	mo := stat.Mean(out, nil)
	if mo <= 0 {
		return 1
	}
	return stat.Mean(in, nil) / mo
}

// nullSampler draws the null significant-gene sets once and reuses them
// for every category.
type nullSampler struct {
	draws [][]int // sampled gene indices per iteration
}

func newNullSampler(rng *rand.Rand, pwf []float64, k, iters int) *nullSampler {
	s := &nullSampler{draws: make([][]int, iters)}
	for it := 0; it < iters; it++ {
		s.draws[it] = weightedSampleK(rng, pwf, k)
	}
	return s
}

func (s *nullSampler) tail(inCat []bool, observed int) float64 {
	exceed := 0
	for _, draw := range s.draws {
		hits := 0
		for _, i := range draw {
			if inCat[i] {
				hits++
			}
		}
		if hits >= observed {
			exceed++
		}
	}
	return float64(1+exceed) / float64(1+len(s.draws))
}

// weightedSampleK draws k indices without replacement with probability
// proportional to w, via the Efraimidis-Spirakis exponential-key trick.
func weightedSampleK(rng *rand.Rand, w []float64, k int) []int {
	if k >= len(w) {
		out := make([]int, len(w))
		for i := range out {
			out[i] = i
		}
		return out
	}
	type keyed struct {
		key float64
		idx int
	}
	keys := make([]keyed, len(w))
	for i, wi := range w {
		keys[i] = keyed{key: rng.ExpFloat64() / wi, idx: i}
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].key < keys[b].key })
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = keys[i].idx
	}
	return out
}
