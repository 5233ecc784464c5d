// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrich-core/gsea"
	"enrich-core/kegg"
	"enrich-core/lengthbias"
	"enrich/pkg/api"
)

func TestWriteTextHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.EnrichmentRowV1{{
		SetID: "HALLMARK_X", Source: "gsea", Size: 20, Hits: 12,
		ES: 0.61234, NES: 1.8345, LeadingEdge: 9,
		PValue: 0.001, AdjPValue: 0.0123,
	}}
	require.NoError(t, WriteText(&buf, rows, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 11)
	assert.Equal(t, "HALLMARK_X", fields[0])
	assert.Equal(t, "gsea", fields[2])
	assert.Equal(t, "0.6123", fields[5])
	assert.Equal(t, "9", fields[7])
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil, false))
	assert.Empty(t, buf.String())
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteRankText(t *testing.T) {
	var buf bytes.Buffer
	entries := []api.RankEntryV1{{GeneID: "g1", Score: 2.5}, {GeneID: "g2", Score: -1}}
	require.NoError(t, WriteRankText(&buf, entries, true))
	assert.Equal(t, "gene_id\tscore\ng1\t2.5\ng2\t-1\n", buf.String())
}

func TestConvertersKeepSourceAndIDs(t *testing.T) {
	g := FromGSEA(gsea.Result{Set: "s1", Size: 30, Hits: 30, ES: 0.5, NES: 1.2, LeadingEdge: 7, P: 0.01, FDR: 0.02}, "r1")
	assert.Equal(t, "gsea", g.Source)
	assert.Equal(t, "s1", g.SetID)
	assert.Equal(t, "r1", g.RunID)
	assert.Equal(t, 7, g.LeadingEdge)

	lb := FromLengthBias(lengthbias.Result{Category: "GO:0001", Size: 40, DEHits: 5, Odds: 1.4, P: 0.03, FDR: 0.1}, "r2")
	assert.Equal(t, "go", lb.Source)
	assert.Equal(t, 5, lb.Hits)
	assert.Equal(t, 1.4, lb.Odds)

	k := FromKEGG(kegg.Result{Pathway: "hsa04110", Name: "Cell cycle", Size: 120, Hits: 18, P: 1e-5, FDR: 1e-3}, "r3")
	assert.Equal(t, "kegg", k.Source)
	assert.Equal(t, "Cell cycle", k.Name)
}

func TestRowJSONTags(t *testing.T) {
	raw, err := json.Marshal(api.EnrichmentRowV1{SetID: "x", Source: "kegg", PValue: 0.5, AdjPValue: 0.5})
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `"set_id":"x"`)
	assert.Contains(t, s, `"p_value":0.5`)
	assert.Contains(t, s, `"adj_p_value":0.5`)
	assert.NotContains(t, s, `"nes"`) // omitempty on zero
}
