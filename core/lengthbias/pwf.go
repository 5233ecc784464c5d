// core/lengthbias/pwf.go
package lengthbias

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// weightFloor keeps the probability weighting strictly positive so
// odds ratios and sampling weights stay defined.
const weightFloor = 1e-6

// FitPWF fits the probability weighting function: the chance of a gene
// being called significant as a monotone nondecreasing function of its
// transcript length. Genes are split into equal-occupancy length bins,
// the per-bin significant fraction is made monotone by
// pool-adjacent-violators, and each gene gets the value interpolated
// between bin median lengths.
func FitPWF(lengths []float64, de []int, bins int) ([]float64, error) {
	n := len(lengths)
	if n == 0 {
		return nil, errors.New("lengthbias: empty input")
	}
	if len(de) != n {
		return nil, errors.New("lengthbias: lengths and flags differ in size")
	}
	if bins <= 0 {
		bins = 40
	}
	if bins > n {
		bins = n
	}

	sorted := make([]float64, n)
	copy(sorted, lengths)
	perm := make([]int, n)
	floats.Argsort(sorted, perm)

	binProp := make([]float64, bins)
	binLen := make([]float64, bins)
	binCnt := make([]float64, bins)
	for b := 0; b < bins; b++ {
		lo := b * n / bins
		hi := (b + 1) * n / bins
		cnt := hi - lo
		hits := 0
		for i := lo; i < hi; i++ {
			hits += de[perm[i]]
		}
		binProp[b] = float64(hits) / float64(cnt)
		binLen[b] = sorted[(lo+hi)/2]
		binCnt[b] = float64(cnt)
	}

	fit := pav(binProp, binCnt)

	out := make([]float64, n)
	for i, l := range lengths {
		out[i] = clampWeight(interp(binLen, fit, l))
	}
	return out, nil
}

// pav enforces monotone nondecreasing values via weighted
// pool-adjacent-violators.
func pav(values, weights []float64) []float64 {
	type block struct {
		sum, w float64
		n      int
	}
	var stack []block
	for i := range values {
		b := block{sum: values[i] * weights[i], w: weights[i], n: 1}
		stack = append(stack, b)
		for len(stack) > 1 {
			top := stack[len(stack)-1]
			prev := stack[len(stack)-2]
			if prev.sum/prev.w <= top.sum/top.w {
				break
			}
			stack = stack[:len(stack)-2]
			stack = append(stack, block{sum: prev.sum + top.sum, w: prev.w + top.w, n: prev.n + top.n})
		}
	}
	out := make([]float64, 0, len(values))
	for _, b := range stack {
		v := b.sum / b.w
		for i := 0; i < b.n; i++ {
			out = append(out, v)
		}
	}
	return out
}

// interp evaluates the piecewise-linear curve (xs ascending) at x,
// clamping outside the fitted range.
func interp(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if x <= xs[i] {
			if xs[i] == xs[i-1] {
				return ys[i]
			}
			f := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + f*(ys[i]-ys[i-1])
		}
	}
	return ys[last]
}

func clampWeight(w float64) float64 {
	if w < weightFloor {
		return weightFloor
	}
	return w
}
