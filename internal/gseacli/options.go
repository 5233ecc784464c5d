// internal/gseacli/options.go
package gseacli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"enrich/internal/clibase"
	"enrich/internal/cliutil"
)

// DefaultPermutations is the registered flag default, shared with the
// config-file merge.
const DefaultPermutations = 1000

// Options for enrich-gsea: the preranked test.
type Options struct {
	clibase.Common

	// GSEA-specific
	SetsFile     string // GMT collection [required]
	RankFile     string // precomputed .rnk (conflicts with --table)
	Permutations int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --sets hallmark.gmt --table de_results.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nGSEA:")
		_, _ = fmt.Fprintln(out, "  -g, --sets file             GMT gene-set collection [required]")
		_, _ = fmt.Fprintf(out, "      --rank file             Precomputed .rnk ranking (conflicts with --table)\n")
		_, _ = fmt.Fprintf(out, "  -n, --permutations int      Gene-label permutations per set [%s]\n", def("permutations"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for enrich-gsea.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "enrich-gsea", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Preranked GSEA of a DE table against a GMT collection.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  enrich-gsea \\")
		_, _ = fmt.Fprintln(w, "    --sets h.all.v2023.2.symbols.gmt \\")
		_, _ = fmt.Fprintln(w, "    --table de_results.tsv \\")
		_, _ = fmt.Fprintln(w, "    --permutations 10000 \\")
		_, _ = fmt.Fprintln(w, "    --plot gsea-dot.png \\")
		_, _ = fmt.Fprintln(w, "    --output json")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.SetsFile, "sets", "", "GMT gene-set collection [required]")
	fs.StringVar(&o.SetsFile, "g", "", "alias of --sets")
	fs.StringVar(&o.RankFile, "rank", "", "precomputed .rnk ranking")
	fs.IntVar(&o.Permutations, "permutations", DefaultPermutations, "gene-label permutations per set [1000]")
	fs.IntVar(&o.Permutations, "n", DefaultPermutations, "alias of --permutations")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	if o.SetsFile == "" {
		return o, errors.New("--sets is required")
	}
	switch {
	case c.TableFile != "" && o.RankFile != "":
		return o, errors.New("--table conflicts with --rank")
	case c.TableFile == "" && o.RankFile == "":
		return o, errors.New("provide --table or --rank")
	}
	if o.Permutations < 1 {
		return o, errors.New("--permutations must be ≥ 1")
	}

	o.Common = c
	return o, nil
}
