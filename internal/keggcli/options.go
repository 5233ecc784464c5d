// internal/keggcli/options.go
package keggcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"enrich/internal/clibase"
	"enrich/internal/cliutil"
)

// Options for enrich-kegg: pathway over-representation against the
// KEGG REST API or local snapshots of it.
type Options struct {
	clibase.Common

	// KEGG-specific
	Organism string
	BaseURL  string
	ListFile string // /list/pathway snapshot (offline mode)
	LinkFile string // /link/pathway snapshot (offline mode)
	HitsFile string // per-gene hit export for pathway coloring
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --organism hsa --table de_results.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nKEGG:")
		_, _ = fmt.Fprintf(out, "      --organism string       KEGG organism code (e.g. hsa, mmu)\n")
		_, _ = fmt.Fprintf(out, "      --kegg-url string       REST endpoint override (also ENRICH_KEGG_URL)\n")
		_, _ = fmt.Fprintln(out, "      --list-file file        Local /list/pathway snapshot (offline)")
		_, _ = fmt.Fprintln(out, "      --link-file file        Local /link/pathway snapshot (offline)")
		_, _ = fmt.Fprintln(out, "      --hits file             Write per-gene pathway hits (gene, pathway, logFC)")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for enrich-kegg.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "enrich-kegg", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "KEGG pathway over-representation of significant genes.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  enrich-kegg \\")
		_, _ = fmt.Fprintln(w, "    --organism hsa \\")
		_, _ = fmt.Fprintln(w, "    --table de_results.tsv \\")
		_, _ = fmt.Fprintln(w, "    --max-fdr 0.01 \\")
		_, _ = fmt.Fprintln(w, "    --plot kegg-dot.svg")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.StringVar(&o.Organism, "organism", "", "KEGG organism code (e.g. hsa)")
	fs.StringVar(&o.BaseURL, "kegg-url", "", "REST endpoint override")
	fs.StringVar(&o.ListFile, "list-file", "", "local /list/pathway snapshot")
	fs.StringVar(&o.LinkFile, "link-file", "", "local /link/pathway snapshot")
	fs.StringVar(&o.HitsFile, "hits", "", "per-gene pathway hit export")

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

	offline := o.ListFile != "" || o.LinkFile != ""
	switch {
	case offline && (o.ListFile == "" || o.LinkFile == ""):
		return o, errors.New("--list-file and --link-file must be supplied together")
	case !offline && o.Organism == "":
		return o, errors.New("provide --organism or --list-file/--link-file")
	}

	o.Common = c
	return o, nil
}
