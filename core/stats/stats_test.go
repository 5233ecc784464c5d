// core/stats/stats_test.go
package stats

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestAdjustBH(t *testing.T) {
	got := AdjustBH([]float64{0.005, 0.1, 0.2})
	want := []float64{0.015, 0.15, 0.2}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("adj[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestAdjustBHProperties(t *testing.T) {
	p := []float64{0.04, 0.001, 0.9, 0.3, 0.02}
	adj := AdjustBH(p)
	for i := range p {
		if adj[i] < p[i] {
			t.Errorf("adjustment decreased p: %g -> %g", p[i], adj[i])
		}
		if adj[i] > 1 {
			t.Errorf("adjusted p above 1: %g", adj[i])
		}
	}
	// Order of evidence preserved.
	if !(adj[1] <= adj[4] && adj[4] <= adj[0]) {
		t.Errorf("monotonicity broken: %v", adj)
	}
}

func TestAdjustBHNaN(t *testing.T) {
	adj := AdjustBH([]float64{0.01, math.NaN(), 0.02})
	if !math.IsNaN(adj[1]) {
		t.Error("NaN input should stay NaN")
	}
	// NaN must not inflate the test count: n=2 here.
	if !approx(adj[0], 0.02) {
		t.Errorf("adj[0] = %g, want 0.02", adj[0])
	}
}

func TestAdjustBHEmptyAndAllNaN(t *testing.T) {
	if got := AdjustBH(nil); len(got) != 0 {
		t.Errorf("AdjustBH(nil) = %v", got)
	}
	got := AdjustBH([]float64{math.NaN()})
	if !math.IsNaN(got[0]) {
		t.Errorf("AdjustBH([NaN]) = %v", got)
	}
}

func TestHypergeomUpperTail(t *testing.T) {
	// Drawing all 5 successes in 5 draws from 10: 1/C(10,5) = 1/252.
	if got := HypergeomUpperTail(5, 5, 5, 10); !approx(got, 1.0/252.0) {
		t.Errorf("tail = %g, want %g", got, 1.0/252.0)
	}
	if got := HypergeomUpperTail(0, 5, 5, 10); got != 1 {
		t.Errorf("x<=0 tail = %g, want 1", got)
	}
	if got := HypergeomUpperTail(6, 5, 5, 10); got != 0 {
		t.Errorf("impossible tail = %g, want 0", got)
	}
	// Complement check: P(X>=1) = 1 - C(5,5)/C(10,5).
	want := 1 - 1.0/252.0
	if got := HypergeomUpperTail(1, 5, 5, 10); !approx(got, want) {
		t.Errorf("tail = %g, want %g", got, want)
	}
}

func TestLogChoose(t *testing.T) {
	if got := LogChoose(5, 2); !approx(got, math.Log(10)) {
		t.Errorf("LogChoose(5,2) = %g, want log(10)", got)
	}
	if got := LogChoose(5, 6); !math.IsInf(got, -1) {
		t.Errorf("out-of-range LogChoose = %g, want -Inf", got)
	}
}
