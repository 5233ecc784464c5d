// internal/gseaapp/app.go
package gseaapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"enrich-core/detable"
	"enrich-core/geneset"
	"enrich-core/gsea"
	"enrich-core/rank"
	"enrich/internal/apputil"
	"enrich/internal/clibase"
	"enrich/internal/common"
	"enrich/internal/config"
	"enrich/internal/gseacli"
	"enrich/internal/output"
	"enrich/internal/pipeline"
	"enrich/internal/plots"
	"enrich/internal/runmeta"
	"enrich/internal/writers"
	"enrich/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := gseacli.NewFlagSet("enrich-gsea")
	fs.SetOutput(io.Discard)

	opts, perr := gseacli.ParseArgs(fs, argv)
	if code, done := apputil.HandleParse(perr, perr == nil && opts.Version, "enrich-gsea", fs, outw, stderr, gseacli.PrintExamples); done {
		return code
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apputil.ExitUsage
		}
		applyConfig(&opts, cfg)
	}

	runID := runmeta.NewRunID()

	v, code := loadRanking(opts, stderr, runID)
	if code != apputil.ExitOK {
		return code
	}

	sets, err := geneset.LoadGMT(opts.SetsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitUsage
	}
	scorer := gsea.New(gsea.Config{
		MinSize:      opts.MinSetSize,
		MaxSize:      opts.MaxSetSize,
		Permutations: opts.Permutations,
		Seed:         opts.Seed,
	}, v)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var results []gsea.Result
	_, err = pipeline.ForEach[gsea.Result](
		ctx,
		pipeline.Config{Threads: apputil.Threads(opts.Threads, runtime.NumCPU())},
		sets.Names,
		func(name string) (gsea.Result, bool) {
			return scorer.Score(name, sets.Sets[name])
		},
		func(r gsea.Result) error {
			results = append(results, r)
			return nil
		},
	)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return apputil.ExitCancelled
		}
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitRuntime
	}

	if skipped := len(sets.Names) - len(results); skipped > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "%d sets outside size bounds [%d, %d]", skipped, opts.MinSetSize, opts.MaxSetSize)
	}

	gsea.FinishFDR(results)
	rows := make([]api.EnrichmentRowV1, 0, len(results))
	for _, r := range results {
		rows = append(rows, output.FromGSEA(r, runID))
	}
	if opts.Sort || opts.TopN > 0 {
		// TopN only makes sense on the sorted order.
		common.SortRows(rows)
		rows = common.TopN(rows, opts.TopN)
	}

	if opts.Plot != "" && len(rows) > 0 {
		if err := plots.DotPlot(opts.Plot, "GSEA "+runID, rows, plotTop(opts.TopN)); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apputil.ExitRuntime
		}
	}

	inCh, writeErr := writers.StartRowWriter(outw, opts.Output, false, opts.Header, len(rows))
	for _, r := range rows {
		inCh <- r
	}
	close(inCh)
	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return apputil.ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return apputil.ExitRuntime
	}

	code = apputil.ExitOK
	if len(rows) == 0 {
		code = opts.NoResultExitCode
	}
	return apputil.Flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadRanking(opts gseacli.Options, stderr io.Writer, runID string) (rank.Vector, int) {
	if opts.RankFile != "" {
		v, err := rank.ReadRNK(opts.RankFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return rank.Vector{}, apputil.ExitUsage
		}
		return v, apputil.ExitOK
	}

	cols := detable.Columns{
		GeneID: opts.GeneCol, LogFC: opts.LogFCCol, PValue: opts.PValueCol,
		FDR: opts.FDRCol, Length: opts.LengthCol,
	}
	tab, err := detable.ReadFile(opts.TableFile, cols)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return rank.Vector{}, apputil.ExitUsage
	}
	if tab.MissingIDs > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "dropped %d rows with missing gene identifiers", tab.MissingIDs)
	}
	if tab.Duplicates > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "dropped %d duplicated gene identifiers (first kept)", tab.Duplicates)
	}
	v, err := rank.Build(tab, rank.Policy(opts.RankBy))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return rank.Vector{}, apputil.ExitUsage
	}
	return v, apputil.ExitOK
}

// applyConfig fills flag defaults from the run-config file; explicit
// flag values (anything differing from the registered default) win.
func applyConfig(opts *gseacli.Options, cfg *config.File) {
	if cfg.GSEA.Permutations > 0 && opts.Permutations == gseacli.DefaultPermutations {
		opts.Permutations = cfg.GSEA.Permutations
	}
	if cfg.GSEA.MinSetSize > 0 && opts.MinSetSize == clibase.DefaultMinSetSize {
		opts.MinSetSize = cfg.GSEA.MinSetSize
	}
	if cfg.GSEA.MaxSetSize > 0 && opts.MaxSetSize == clibase.DefaultMaxSetSize {
		opts.MaxSetSize = cfg.GSEA.MaxSetSize
	}
	if cfg.GSEA.Seed != 0 && opts.Seed == clibase.DefaultSeed {
		opts.Seed = cfg.GSEA.Seed
	}
}

func plotTop(topN int) int {
	if topN > 0 {
		return topN
	}
	return 30
}
