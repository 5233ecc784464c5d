// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrich/internal/goapp"
	"enrich/internal/gseaapp"
	"enrich/internal/keggapp"
	"enrich/internal/rankapp"
)

const deTable = `gene_id	logFC	PValue	FDR	median_length
g1	2.0	0.0001	0.001	500
g2	-1.5	0.0005	0.004	1500
g3	0.5	0.2	0.5	800
g4	-0.2	0.6	0.9	1200
g5	1.0	0.01	0.05	700
g6	-2.2	0.0002	0.002	600
`

const gmt = `UP	up genes	g1	g5	g3
DOWN	down genes	g2	g6	g4
`

const keggList = `path:hsa00010	Glycolysis / Gluconeogenesis
path:hsa04110	Cell cycle
`

const keggLink = `hsa:g1	path:hsa00010
hsa:g2	path:hsa00010
hsa:g6	path:hsa04110
hsa:g3	path:hsa04110
hsa:g4	path:hsa04110
`

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRankEndToEnd(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	rnk := filepath.Join(dir, "de.rnk")

	var out, errb bytes.Buffer
	code := rankapp.Run([]string{"--table", table, "--rnk-out", rnk, "--quiet"}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	got := lines(out.String())
	require.Len(t, got, 7) // header + 6 genes
	assert.Equal(t, "gene_id\tscore", got[0])
	assert.True(t, strings.HasPrefix(got[1], "g1\t"), "strongest up gene first")
	assert.True(t, strings.HasPrefix(got[6], "g6\t"), "strongest down gene last")

	raw, err := os.ReadFile(rnk)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "g1\t"))
}

func TestRankLogFCPolicy(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)

	var out, errb bytes.Buffer
	code := rankapp.Run([]string{"--table", table, "--rank-by", "logfc", "--no-header", "--quiet"}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	got := lines(out.String())
	require.Len(t, got, 6)
	assert.Equal(t, "g1\t2", got[0])
	assert.True(t, strings.HasPrefix(got[5], "g6\t"))
}

func TestGSEAEndToEnd(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)

	var out, errb bytes.Buffer
	code := gseaapp.Run([]string{
		"--table", table, "--sets", sets,
		"--min-set-size", "1", "--permutations", "50", "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	got := lines(out.String())
	require.Len(t, got, 3) // header + 2 sets
	assert.True(t, strings.HasPrefix(got[0], "set_id\t"))
	body := got[1] + "\n" + got[2]
	assert.Contains(t, body, "UP")
	assert.Contains(t, body, "DOWN")
}

func TestGSEADeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)
	argv := []string{
		"--table", table, "--sets", sets,
		"--min-set-size", "1", "--permutations", "100", "--seed", "7", "--quiet",
	}

	var a, b, errb bytes.Buffer
	require.Equal(t, 0, gseaapp.Run(argv, &a, &errb), errb.String())
	require.Equal(t, 0, gseaapp.Run(argv, &b, &errb), errb.String())
	assert.Equal(t, a.String(), b.String())
}

func TestGSEAConfigFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)
	cfg := write(t, dir, "enrich.toml", "[gsea]\nmin_set_size = 1\npermutations = 50\n")

	var out, errb bytes.Buffer
	code := gseaapp.Run([]string{
		"--table", table, "--sets", sets, "--config", cfg, "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())
	require.Len(t, lines(out.String()), 3) // header + 2 sets
}

func TestGSEAConfigFileLosesToFlags(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)
	cfg := write(t, dir, "enrich.toml", "[gsea]\nmin_set_size = 1\n")

	var out, errb bytes.Buffer
	code := gseaapp.Run([]string{
		"--table", table, "--sets", sets, "--config", cfg,
		"--min-set-size", "100", "--quiet",
	}, &out, &errb)
	assert.Equal(t, 1, code, "explicit --min-set-size must override the config file")
}

func TestGSEANoResultExitCode(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)

	var out, errb bytes.Buffer
	code := gseaapp.Run([]string{
		"--table", table, "--sets", sets,
		"--min-set-size", "100", "--no-result-exit-code", "7", "--quiet",
	}, &out, &errb)
	assert.Equal(t, 7, code)
}

func TestGSEAUsageError(t *testing.T) {
	var out, errb bytes.Buffer
	code := gseaapp.Run([]string{"--table", "a", "--rank", "b", "--sets", "c"}, &out, &errb)
	assert.Equal(t, 2, code)
	assert.Contains(t, errb.String(), "--table conflicts with --rank")
}

func TestGOEndToEnd(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	sets := write(t, dir, "sets.gmt", gmt)

	var out, errb bytes.Buffer
	code := goapp.Run([]string{
		"--table", table, "--sets", sets,
		"--min-set-size", "1", "--bins", "2",
		"--method", "hypergeometric", "--output", "jsonl", "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	got := lines(out.String())
	require.Len(t, got, 2)
	assert.Contains(t, got[0], `"source":"go"`)
}

func TestKEGGOfflineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	list := write(t, dir, "list.tsv", keggList)
	link := write(t, dir, "link.tsv", keggLink)

	var out, errb bytes.Buffer
	code := keggapp.Run([]string{
		"--table", table, "--list-file", list, "--link-file", link,
		"--min-set-size", "1", "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	got := lines(out.String())
	require.Len(t, got, 3) // header + 2 pathways
	body := out.String()
	assert.Contains(t, body, "hsa00010")
	assert.Contains(t, body, "Cell cycle")
}

func TestKEGGHitsExport(t *testing.T) {
	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)
	list := write(t, dir, "list.tsv", keggList)
	link := write(t, dir, "link.tsv", keggLink)
	hits := filepath.Join(dir, "hits.tsv")

	var out, errb bytes.Buffer
	code := keggapp.Run([]string{
		"--table", table, "--list-file", list, "--link-file", link,
		"--min-set-size", "1", "--hits", hits, "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	raw, err := os.ReadFile(hits)
	require.NoError(t, err)
	got := lines(string(raw))
	assert.Equal(t, "gene_id\tpathway_id\tlogFC", got[0])
	assert.Contains(t, string(raw), "g1\thsa00010\t2")
	assert.Contains(t, string(raw), "g6\thsa04110\t-2.2")
}

func TestKEGGRESTEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/list/pathway/hsa":
			_, _ = w.Write([]byte(keggList))
		case "/link/pathway/hsa":
			_, _ = w.Write([]byte(keggLink))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)

	var out, errb bytes.Buffer
	code := keggapp.Run([]string{
		"--table", table, "--organism", "hsa", "--kegg-url", srv.URL,
		"--min-set-size", "1", "--quiet",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())
	assert.Contains(t, out.String(), "hsa04110")
}

func TestKEGGServerErrorIsRuntime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	dir := t.TempDir()
	table := write(t, dir, "de.tsv", deTable)

	var out, errb bytes.Buffer
	code := keggapp.Run([]string{
		"--table", table, "--organism", "hsa", "--kegg-url", srv.URL, "--quiet",
	}, &out, &errb)
	assert.Equal(t, 3, code)
}
