// core/stats/stats.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AdjustBH returns Benjamini-Hochberg adjusted p-values in the input
// order. NaN inputs yield NaN outputs and do not count toward the
// number of tests.
func AdjustBH(p []float64) []float64 {
	n := 0
	for _, v := range p {
		if !math.IsNaN(v) {
			n++
		}
	}
	out := make([]float64, len(p))
	if n == 0 {
		copy(out, p)
		return out
	}

	sorted := make([]float64, 0, n)
	idx := make([]int, 0, n)
	for i, v := range p {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		sorted = append(sorted, v)
		idx = append(idx, i)
	}
	perm := make([]int, len(sorted))
	floats.Argsort(sorted, perm)

	// Step down from the largest rank enforcing monotonicity.
	running := 1.0
	for k := len(sorted) - 1; k >= 0; k-- {
		adj := sorted[k] * float64(n) / float64(k+1)
		if adj < running {
			running = adj
		}
		out[idx[perm[k]]] = running
	}
	return out
}

// LogChoose returns log(C(n, k)) via the log-gamma function.
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	ln, _ := math.Lgamma(float64(n + 1))
	lk, _ := math.Lgamma(float64(k + 1))
	lnk, _ := math.Lgamma(float64(n - k + 1))
	return ln - lk - lnk
}

// HypergeomUpperTail is P(X >= x) for X hypergeometric: n draws without
// replacement from a universe of size N containing K successes.
// Computed in log space; gonum's distuv has no hypergeometric.
func HypergeomUpperTail(x, K, n, N int) float64 {
	if x <= 0 {
		return 1
	}
	lo := x
	hi := n
	if K < hi {
		hi = K
	}
	if lo > hi {
		return 0
	}
	denom := LogChoose(N, n)
	terms := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		if n-i > N-K {
			continue
		}
		terms = append(terms, LogChoose(K, i)+LogChoose(N-K, n-i)-denom)
	}
	return math.Min(1, logSumExpProb(terms))
}

// logSumExpProb exponentiates a stable log-sum-exp of log-probability
// terms.
func logSumExpProb(logs []float64) float64 {
	if len(logs) == 0 {
		return 0
	}
	max := floats.Max(logs)
	if math.IsInf(max, -1) {
		return 0
	}
	s := 0.0
	for _, l := range logs {
		s += math.Exp(l - max)
	}
	return math.Exp(max) * s
}
