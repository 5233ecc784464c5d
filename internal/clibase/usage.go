// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"enrich/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, method blocks).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - gene-set enrichment toolkit\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --table file            Differential-expression table (TSV/CSV)")
		fmt.Fprintf(out, "      --gene-col string       Gene identifier column [%s]\n", def("gene-col"))
		fmt.Fprintf(out, "      --logfc-col string      log2 fold-change column [%s]\n", def("logfc-col"))
		fmt.Fprintf(out, "      --pvalue-col string     P-value column [%s]\n", def("pvalue-col"))
		fmt.Fprintf(out, "      --fdr-col string        FDR column [%s]\n", def("fdr-col"))
		fmt.Fprintf(out, "      --length-col string     Transcript length column [%s]\n", def("length-col"))

		fmt.Fprintln(out, "\nSelection:")
		fmt.Fprintf(out, "      --rank-by string        Rank policy: logfc | signedp [%s]\n", def("rank-by"))
		fmt.Fprintf(out, "      --max-fdr float         FDR threshold for significance [%s]\n", def("max-fdr"))
		fmt.Fprintf(out, "      --min-logfc float       Minimum |logFC| for significance [%s]\n", def("min-logfc"))
		fmt.Fprintf(out, "      --min-set-size int      Smallest testable gene set [%s]\n", def("min-set-size"))
		fmt.Fprintf(out, "      --max-set-size int      Largest testable gene set (0=unbounded) [%s]\n", def("max-set-size"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --seed int              RNG seed for permutations/sampling [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --top int               Emit only the strongest N rows (0=all) [%s]\n", def("top"))
		fmt.Fprintf(out, "      --sort                  Sort by adjusted p, then |statistic| [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --plot file             Write an enrichment dot plot (.png/.svg)\n")
		fmt.Fprintf(out, "      --no-result-exit-code int  Exit code when no set is testable [%s]\n", def("no-result-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --config file           TOML run-config file (flags win)\n")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
