// internal/writers/result.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"enrich/internal/common"
	"enrich/internal/jsonlutil"
	"enrich/internal/output"
	"enrich/pkg/api"
)

// StartRowWriter spins up a writer goroutine for enrichment result
// rows. "text" and "tsv" share the tab-separated renderer; "json"
// buffers the batch into one array; "jsonl" streams one object per
// line.
func StartRowWriter(out io.Writer, format string, sortRows, header bool, bufSize int) (chan<- api.EnrichmentRowV1, <-chan error) {
	if format == "jsonl" && !sortRows {
		return jsonlutil.Start[api.EnrichmentRowV1](out, bufSize,
			func(enc *json.Encoder, r api.EnrichmentRowV1) error { return enc.Encode(r) },
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.EnrichmentRowV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "text", "tsv":
			if sortRows {
				var buf []api.EnrichmentRowV1
				for r := range in {
					buf = append(buf, r)
				}
				common.SortRows(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		case "json":
			var buf []api.EnrichmentRowV1
			for r := range in {
				buf = append(buf, r)
			}
			if sortRows {
				common.SortRows(buf)
			}
			err = output.WriteJSON(out, buf)

		case "jsonl":
			var buf []api.EnrichmentRowV1
			for r := range in {
				buf = append(buf, r)
			}
			common.SortRows(buf)
			enc := json.NewEncoder(out)
			for _, r := range buf {
				if err = enc.Encode(r); err != nil {
					break
				}
			}

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
