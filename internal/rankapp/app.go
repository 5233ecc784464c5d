// internal/rankapp/app.go
package rankapp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"enrich-core/detable"
	"enrich-core/rank"
	"enrich/internal/apputil"
	"enrich/internal/output"
	"enrich/internal/rankcli"
	"enrich/internal/runmeta"
	"enrich/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := rankcli.NewFlagSet("enrich-rank")
	fs.SetOutput(io.Discard)

	opts, perr := rankcli.ParseArgs(fs, argv)
	if code, done := apputil.HandleParse(perr, perr == nil && opts.Version, "enrich-rank", fs, outw, stderr, rankcli.PrintExamples); done {
		return code
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

	v, err := rank.Build(tab, rank.Policy(opts.RankBy))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitUsage
	}

	if opts.RnkOut != "" {
		fh, err := os.Create(opts.RnkOut)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return apputil.ExitRuntime
		}
		werr := rank.WriteRNK(fh, v)
		if cerr := fh.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return apputil.ExitRuntime
		}
	}

	entries := make([]api.RankEntryV1, 0, len(v.Order))
	for _, id := range v.Order {
		entries = append(entries, api.RankEntryV1{GeneID: id, Score: v.Score[id]})
	}
	if opts.TopN > 0 && opts.TopN < len(entries) {
		entries = entries[:opts.TopN]
	}

	switch opts.Output {
	case "text", "tsv":
		err = output.WriteRankText(outw, entries, opts.Header)
	case "json":
		err = output.WriteRankJSON(outw, entries)
	case "jsonl":
		enc := json.NewEncoder(outw)
		for _, e := range entries {
			if err = enc.Encode(e); err != nil {
				break
			}
		}
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return apputil.ExitRuntime
	}

	code := apputil.ExitOK
	if len(entries) == 0 {
		code = opts.NoResultExitCode
	}
	return apputil.Flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
