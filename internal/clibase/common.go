// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"enrich/internal/cliutil"
)

// Rank policies accepted by --rank-by.
const (
	PolicyLogFC   = "logfc"
	PolicySignedP = "signedp"
)

// Registered flag defaults, shared with the config-file merge so the
// "flag left at default" checks cannot drift from Register.
const (
	DefaultMinSetSize = 15
	DefaultMaxSetSize = 500
	DefaultSeed       = int64(1)
)

// Common holds the CLI fields shared by every enrich tool.
type Common struct {
	// Input
	TableFile string
	GeneCol   string
	LogFCCol  string
	PValueCol string
	FDRCol    string
	LengthCol string

	// Selection
	RankBy      string
	MaxFDR      float64
	MinAbsLogFC float64
	MinSetSize  int
	MaxSetSize  int

	// Performance
	Threads int
	Seed    int64

	// Output
	Output           string // text | tsv | json | jsonl
	TopN             int
	Sort             bool
	Header           bool
	Plot             string
	NoResultExitCode int

	// Misc
	ConfigFile string
	Quiet      bool
	Version    bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool that AfterParse folds into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Input
	fs.StringVar(&c.TableFile, "table", "", "differential-expression table (TSV/CSV)")
	fs.StringVar(&c.TableFile, "i", "", "alias of --table")
	fs.StringVar(&c.GeneCol, "gene-col", "gene_id", "gene identifier column [gene_id]")
	fs.StringVar(&c.LogFCCol, "logfc-col", "logFC", "log2 fold-change column [logFC]")
	fs.StringVar(&c.PValueCol, "pvalue-col", "PValue", "p-value column [PValue]")
	fs.StringVar(&c.FDRCol, "fdr-col", "FDR", "FDR column [FDR]")
	fs.StringVar(&c.LengthCol, "length-col", "median_length", "median transcript length column [median_length]")

	// Selection
	fs.StringVar(&c.RankBy, "rank-by", PolicySignedP, "rank policy: logfc | signedp [signedp]")
	fs.Float64Var(&c.MaxFDR, "max-fdr", 0.01, "FDR threshold for significance [0.01]")
	fs.Float64Var(&c.MinAbsLogFC, "min-logfc", 0, "minimum |logFC| for significance [0]")
	fs.IntVar(&c.MinSetSize, "min-set-size", DefaultMinSetSize, "smallest testable gene set [15]")
	fs.IntVar(&c.MaxSetSize, "max-set-size", DefaultMaxSetSize, "largest testable gene set (0=unbounded) [500]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")
	fs.Int64Var(&c.Seed, "seed", DefaultSeed, "RNG seed for permutations/sampling [1]")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | tsv | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.IntVar(&c.TopN, "top", 0, "emit only the strongest N rows (0=all) [0]")
	fs.BoolVar(&c.Sort, "sort", true, "sort rows by adjusted p, then |statistic| [true]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.StringVar(&c.Plot, "plot", "", "write an enrichment dot plot (.png or .svg)")
	fs.IntVar(&c.NoResultExitCode, "no-result-exit-code", 1, "exit code when no set is testable [1]")

	// Misc
	fs.StringVar(&c.ConfigFile, "config", "", "TOML run-config file (flags win)")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, folds a lone positional into --table,
// then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	table, err := cliutil.SingleTable(posArgs)
	if err != nil {
		return err
	}
	if table != "" {
		if c.TableFile != "" {
			return errors.New("--table conflicts with a positional table argument")
		}
		c.TableFile = table
	}
	return Validate(c)
}

// Validate applies the invariants shared by all tools.
func Validate(c *Common) error {
	switch c.RankBy {
	case PolicyLogFC, PolicySignedP:
	default:
		return fmt.Errorf("invalid --rank-by %q", c.RankBy)
	}
	if c.MaxFDR <= 0 || c.MaxFDR > 1 {
		return errors.New("--max-fdr must be in (0, 1]")
	}
	if c.MinAbsLogFC < 0 {
		return errors.New("--min-logfc must be ≥ 0")
	}
	if c.MinSetSize < 0 {
		return errors.New("--min-set-size must be ≥ 0")
	}
	if c.MaxSetSize < 0 {
		return errors.New("--max-set-size must be ≥ 0")
	}
	if c.MaxSetSize > 0 && c.MinSetSize > c.MaxSetSize {
		return errors.New("--min-set-size exceeds --max-set-size")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.TopN < 0 {
		return errors.New("--top must be ≥ 0")
	}
	switch c.Output {
	case "text", "tsv", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoResultExitCode < 0 || c.NoResultExitCode > 255 {
		return errors.New("--no-result-exit-code must be between 0 and 255")
	}
	return nil
}
