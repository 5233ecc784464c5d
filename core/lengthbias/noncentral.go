// core/lengthbias/noncentral.go
package lengthbias

import (
	"math"

	"enrich-core/stats"
)

// NoncentralTail is P(X >= x) under Fisher's noncentral hypergeometric
// distribution: k draws from a universe of N genes of which m belong to
// the category, with per-gene odds w for category members. With w == 1
// this reduces to the central hypergeometric tail.
func NoncentralTail(x, m, k, N int, odds float64) float64 {
	if x <= 0 {
		return 1
	}
	lo := 0
	if k-(N-m) > 0 {
		lo = k - (N - m)
	}
	hi := k
	if m < hi {
		hi = m
	}
	if x > hi {
		return 0
	}
	if odds <= 0 {
		odds = weightFloor
	}

	logOdds := math.Log(odds)
	logs := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		logs = append(logs, stats.LogChoose(m, i)+stats.LogChoose(N-m, k-i)+float64(i)*logOdds)
	}

	max := logs[0]
	for _, l := range logs {
		if l > max {
			max = l
		}
	}
	var total, tail float64
	for j, l := range logs {
		t := math.Exp(l - max)
		total += t
		if lo+j >= x {
			tail += t
		}
	}
	return tail / total
}
