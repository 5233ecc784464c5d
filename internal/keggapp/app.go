// internal/keggapp/app.go
package keggapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"enrich-core/detable"
	"enrich-core/kegg"
	"enrich-core/rank"
	"enrich/internal/apputil"
	"enrich/internal/common"
	"enrich/internal/config"
	"enrich/internal/keggcli"
	"enrich/internal/output"
	"enrich/internal/plots"
	"enrich/internal/runmeta"
	"enrich/internal/writers"
	"enrich/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := keggcli.NewFlagSet("enrich-kegg")
	fs.SetOutput(io.Discard)

	opts, perr := keggcli.ParseArgs(fs, argv)
	if code, done := apputil.HandleParse(perr, perr == nil && opts.Version, "enrich-kegg", fs, outw, stderr, keggcli.PrintExamples); done {
		return code
	}

	var cfg *config.File
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apputil.ExitUsage
		}
		if opts.Organism == "" {
			opts.Organism = cfg.KEGG.Organism
		}
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

	sig := rank.Significant(tab, rank.Thresholds{MaxFDR: opts.MaxFDR, MinAbsLogFC: opts.MinAbsLogFC})

	names, gene2path, code := loadPathways(parent, opts, cfg, stderr)
	if code != apputil.ExitOK {
		return code
	}

	results, skipped := kegg.Enrich(sig, gene2path, names, kegg.Config{
		MinSize: opts.MinSetSize,
		MaxSize: opts.MaxSetSize,
	})
	if skipped > 0 {
		runmeta.Warnf(stderr, opts.Quiet, runID, "%d significant genes have no pathway annotation", skipped)
	}

	if opts.HitsFile != "" {
		if err := writeHits(opts.HitsFile, sig, gene2path, results, tab); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apputil.ExitRuntime
		}
	}

	rows := make([]api.EnrichmentRowV1, 0, len(results))
	for _, r := range results {
		rows = append(rows, output.FromKEGG(r, runID))
	}
	if opts.Sort || opts.TopN > 0 {
		common.SortRows(rows)
		rows = common.TopN(rows, opts.TopN)
	}

	if opts.Plot != "" && len(rows) > 0 {
		if err := plots.DotPlot(opts.Plot, "KEGG "+runID, rows, plotTop(opts.TopN)); err != nil {
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

// loadPathways fetches pathway names and gene-to-pathway links, either
// from local snapshot files or from the REST API.
func loadPathways(ctx context.Context, opts keggcli.Options, cfg *config.File, stderr io.Writer) (map[string]string, map[string][]string, int) {
	if opts.ListFile != "" {
		names, err := kegg.LoadListFile(opts.ListFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, nil, apputil.ExitUsage
		}
		gene2path, err := kegg.LoadLinkFile(opts.LinkFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return nil, nil, apputil.ExitUsage
		}
		return names, gene2path, apputil.ExitOK
	}

	base := opts.BaseURL
	if base == "" {
		base = config.KEGGBaseURL(cfg)
	}
	client := kegg.NewClient(base)

	names, err := client.ListPathways(ctx, opts.Organism)
	if err == nil {
		var gene2path map[string][]string
		gene2path, err = client.LinkPathways(ctx, opts.Organism)
		if err == nil {
			return names, gene2path, apputil.ExitOK
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil, nil, apputil.ExitCancelled
	}
	_, _ = fmt.Fprintln(stderr, err)
	return nil, nil, apputil.ExitRuntime
}

// writeHits exports one line per significant gene per tested pathway,
// with its logFC, for downstream pathway coloring.
func writeHits(path string, sig []string, gene2path map[string][]string, results []kegg.Result, tab *detable.Table) error {
	logFC := make(map[string]float64, len(tab.Records))
	for _, rec := range tab.Records {
		logFC[rec.GeneID] = rec.LogFC
	}
	tested := make(map[string]struct{}, len(results))
	for _, r := range results {
		tested[r.Pathway] = struct{}{}
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	_, _ = fmt.Fprintln(w, "gene_id\tpathway_id\tlogFC")
	for _, g := range sig {
		for _, p := range gene2path[g] {
			if _, ok := tested[p]; !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%g\n", g, p, logFC[g]); err != nil {
				_ = fh.Close()
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func plotTop(topN int) int {
	if topN > 0 {
		return topN
	}
	return 30
}
