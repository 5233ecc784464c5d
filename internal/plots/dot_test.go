// internal/plots/dot_test.go
package plots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrich/pkg/api"
)

func sampleRows() []api.EnrichmentRowV1 {
	return []api.EnrichmentRowV1{
		{SetID: "HALLMARK_A", Source: "gsea", Size: 40, Hits: 22, AdjPValue: 1e-4},
		{SetID: "HALLMARK_B", Source: "gsea", Size: 80, Hits: 10, AdjPValue: 0.02},
		{SetID: "HALLMARK_C", Source: "gsea", Size: 25, Hits: 5, AdjPValue: 0.3},
	}
}

func TestDotPlotWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	require.NoError(t, DotPlot(path, "test run", sampleRows(), 10))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}

func TestDotPlotWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.svg")
	require.NoError(t, DotPlot(path, "test run", sampleRows(), 10))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
}

func TestDotPlotZeroPAdjClamped(t *testing.T) {
	rows := []api.EnrichmentRowV1{{SetID: "X", Size: 10, Hits: 10, AdjPValue: 0}}
	path := filepath.Join(t.TempDir(), "dot.png")
	assert.NoError(t, DotPlot(path, "clamp", rows, 1))
}
