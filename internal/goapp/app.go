// internal/goapp/app.go
package goapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"enrich-core/detable"
	"enrich-core/geneset"
	"enrich-core/lengthbias"
	"enrich-core/rank"
	"enrich/internal/apputil"
	"enrich/internal/common"
	"enrich/internal/config"
	"enrich/internal/gocli"
	"enrich/internal/output"
	"enrich/internal/plots"
	"enrich/internal/runmeta"
	"enrich/internal/writers"
	"enrich/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := gocli.NewFlagSet("enrich-go")
	fs.SetOutput(io.Discard)

	opts, perr := gocli.ParseArgs(fs, argv)
	if code, done := apputil.HandleParse(perr, perr == nil && opts.Version, "enrich-go", fs, outw, stderr, gocli.PrintExamples); done {
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

	cols := detable.Columns{
		GeneID: opts.GeneCol, LogFC: opts.LogFCCol, PValue: opts.PValueCol,
		FDR: opts.FDRCol, Length: opts.LengthCol,
	}
	tab, err := detable.ReadFile(opts.TableFile, cols)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitUsage
	}
	if tab.MissingIDs > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "dropped %d rows with missing gene identifiers", tab.MissingIDs)
	}
	if tab.Duplicates > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "dropped %d duplicated gene identifiers (first kept)", tab.Duplicates)
	}

	flags := rank.Flags(tab, rank.Thresholds{MaxFDR: opts.MaxFDR, MinAbsLogFC: opts.MinAbsLogFC})
	lengths := tab.Lengths()

	cats, err := geneset.LoadGMT(opts.SetsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitUsage
	}

	results, dropped, err := lengthbias.Test(flags, lengths, cats, lengthbias.Config{
		Bins:       opts.Bins,
		Method:     opts.Method,
		Iterations: opts.Iterations,
		Seed:       opts.Seed,
		MinSize:    opts.MinSetSize,
		MaxSize:    opts.MaxSetSize,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitRuntime
	}
	if dropped > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "excluded %d genes without a length from the universe", dropped)
	}

	rows := make([]api.EnrichmentRowV1, 0, len(results))
	for _, r := range results {
		rows = append(rows, output.FromLengthBias(r, runID))
	}
	if opts.Sort || opts.TopN > 0 {
		common.SortRows(rows)
		rows = common.TopN(rows, opts.TopN)
	}

	if opts.Plot != "" && len(rows) > 0 {
		if err := plots.DotPlot(opts.Plot, "GO "+runID, rows, plotTop(opts.TopN)); err != nil {
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

	code := apputil.ExitOK
	if len(rows) == 0 {
		code = opts.NoResultExitCode
	}
	return apputil.Flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func applyConfig(opts *gocli.Options, cfg *config.File) {
	if cfg.GO.Bins > 0 && opts.Bins == gocli.DefaultBins {
		opts.Bins = cfg.GO.Bins
	}
	if cfg.GO.Method != "" && opts.Method == lengthbias.MethodFisher {
		opts.Method = cfg.GO.Method
	}
	if cfg.GO.Iterations > 0 && opts.Iterations == gocli.DefaultIterations {
		opts.Iterations = cfg.GO.Iterations
	}
}

func plotTop(topN int) int {
	if topN > 0 {
		return topN
	}
	return 30
}
