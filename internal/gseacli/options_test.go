// internal/gseacli/options_test.go
package gseacli

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrich/internal/clibase"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("enrich-gsea")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseMinimal(t *testing.T) {
	o, err := parse(t, "--sets", "h.gmt", "--table", "de.tsv")
	require.NoError(t, err)
	assert.Equal(t, "h.gmt", o.SetsFile)
	assert.Equal(t, "de.tsv", o.TableFile)
	assert.Equal(t, 1000, o.Permutations)
}

func TestParseRankFileInsteadOfTable(t *testing.T) {
	o, err := parse(t, "-g", "h.gmt", "--rank", "de.rnk", "-n", "500")
	require.NoError(t, err)
	assert.Equal(t, "de.rnk", o.RankFile)
	assert.Equal(t, 500, o.Permutations)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"no sets", []string{"--table", "de.tsv"}},
		{"no input", []string{"--sets", "h.gmt"}},
		{"table and rank", []string{"--sets", "h.gmt", "--table", "a", "--rank", "b"}},
		{"zero permutations", []string{"--sets", "h.gmt", "--rank", "a", "-n", "0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			assert.Error(t, err)
		})
	}
}

func TestParseHelpAndExamples(t *testing.T) {
	_, err := parse(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parse(t, "--examples")
	assert.ErrorIs(t, err, clibase.ErrPrintedAndExitOK)
}

func TestParseVersionShortCircuits(t *testing.T) {
	o, err := parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, o.Version)
}
