// core/gsea/permute.go
package gsea

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"

	"enrich-core/stats"
	"gonum.org/v1/gonum/stat"
)

// permute estimates the null by drawing random hit positions of the
// same size, then returns NES and the sign-matched nominal p-value
// with the usual +1 pseudocount.
func (s *Scorer) permute(name string, nh int, es float64) (nes, p float64) {
	rng := rand.New(rand.NewSource(s.cfg.Seed ^ int64(hashName(name))))

	var sameSign []float64
	exceed := 0
	buf := make([]int, 0, nh)
	for i := 0; i < s.cfg.Permutations; i++ {
		null := s.walkSampled(rng, nh, buf)
		switch {
		case es >= 0 && null >= 0:
			sameSign = append(sameSign, null)
			if null >= es {
				exceed++
			}
		case es < 0 && null < 0:
			sameSign = append(sameSign, -null)
			if null <= es {
				exceed++
			}
		}
	}

	if len(sameSign) == 0 {
		return 0, 1
	}
	p = float64(1+exceed) / float64(1+len(sameSign))
	if m := stat.Mean(sameSign, nil); m > 0 {
		nes = es / m
	}
	return nes, p
}

func (s *Scorer) walkSampled(rng *rand.Rand, nh int, buf []int) float64 {
	pos := sampleK(rng, len(s.weight), nh, buf)
	sort.Ints(pos)
	es, _ := s.walk(pos)
	return es
}

// sampleK draws k distinct ints from [0,n) by Floyd's algorithm.
func sampleK(rng *rand.Rand, n, k int, buf []int) []int {
	out := buf[:0]
	seen := make(map[int]struct{}, k)
	for i := n - k; i < n; i++ {
		j := rng.Intn(i + 1)
		if _, dup := seen[j]; dup {
			j = i
		}
		seen[j] = struct{}{}
		out = append(out, j)
	}
	return out
}

func hashName(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

// FinishFDR fills Result.FDR with Benjamini-Hochberg adjusted nominal
// p-values across the batch. NaN-safe via stats.AdjustBH.
func FinishFDR(rs []Result) {
	if len(rs) == 0 {
		return
	}
	p := make([]float64, len(rs))
	for i := range rs {
		p[i] = rs[i].P
	}
	adj := stats.AdjustBH(p)
	for i := range rs {
		if math.IsNaN(adj[i]) {
			rs[i].FDR = 1
			continue
		}
		rs[i].FDR = adj[i]
	}
}
