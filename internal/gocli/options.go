// internal/gocli/options.go
package gocli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"enrich-core/lengthbias"
	"enrich/internal/clibase"
	"enrich/internal/cliutil"
)

// Registered flag defaults, shared with the config-file merge.
const (
	DefaultBins       = 40
	DefaultIterations = 2000
)

// Options for enrich-go: length-bias-corrected over-representation.
type Options struct {
	clibase.Common

	// GO-specific
	SetsFile   string // GMT category collection [required]
	Bins       int
	Method     string
	Iterations int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --sets go_bp.gmt --table de_results.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nLength bias:")
		_, _ = fmt.Fprintln(out, "  -g, --sets file             GMT category collection [required]")
		_, _ = fmt.Fprintf(out, "      --bins int              Length bins for the PWF fit [%s]\n", def("bins"))
		_, _ = fmt.Fprintf(out, "      --method string         fisher (noncentral) | sampling | hypergeometric [%s]\n", def("method"))
		_, _ = fmt.Fprintf(out, "      --iterations int        Sampling iterations [%s]\n", def("iterations"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for enrich-go.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "enrich-go", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "GO over-representation with transcript-length correction.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  enrich-go \\")
		_, _ = fmt.Fprintln(w, "    --sets go_bp.gmt \\")
		_, _ = fmt.Fprintln(w, "    --table de_results.tsv \\")
		_, _ = fmt.Fprintln(w, "    --max-fdr 0.01 --min-logfc 1 \\")
		_, _ = fmt.Fprintln(w, "    --method fisher")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.SetsFile, "sets", "", "GMT category collection [required]")
	fs.StringVar(&o.SetsFile, "g", "", "alias of --sets")
	fs.IntVar(&o.Bins, "bins", DefaultBins, "length bins for the PWF fit [40]")
	fs.StringVar(&o.Method, "method", lengthbias.MethodFisher, "fisher | sampling | hypergeometric [fisher]")
	fs.IntVar(&o.Iterations, "iterations", DefaultIterations, "sampling iterations [2000]")

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
	if c.TableFile == "" {
		return o, errors.New("--table is required")
	}
	switch o.Method {
	case lengthbias.MethodFisher, lengthbias.MethodSampling, lengthbias.MethodHypergeometric:
	default:
		return o, fmt.Errorf("invalid --method %q", o.Method)
	}
	if o.Bins < 1 {
		return o, errors.New("--bins must be ≥ 1")
	}
	if o.Iterations < 1 {
		return o, errors.New("--iterations must be ≥ 1")
	}

	o.Common = c
	return o, nil
}
