// internal/rankcli/options.go
package rankcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"enrich/internal/clibase"
	"enrich/internal/cliutil"
)

// Options for enrich-rank: build a ranked gene list from a DE table.
type Options struct {
	clibase.Common

	// Rank-specific
	RnkOut string // also write the ranking as a .rnk file
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --table de_results.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nRank:")
		_, _ = fmt.Fprintf(out, "      --rnk-out file          Also write the ranking as a .rnk file\n")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for enrich-rank.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "enrich-rank", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Build a signed -log10(p) ranking from a DE table.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  enrich-rank \\")
		_, _ = fmt.Fprintln(w, "    --table de_results.tsv \\")
		_, _ = fmt.Fprintln(w, "    --rank-by signedp \\")
		_, _ = fmt.Fprintln(w, "    --rnk-out de_results.rnk")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.RnkOut, "rnk-out", "", "also write the ranking as a .rnk file")

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
	if c.TableFile == "" {
		return o, errors.New("--table is required")
	}

	o.Common = c
	return o, nil
}
