// internal/output/json.go
package output

import (
	"io"

	"enrich/internal/jsonutil"
	"enrich/pkg/api"
)

// WriteJSON writes a single pretty-indented JSON array of v1 rows.
func WriteJSON(w io.Writer, rows []api.EnrichmentRowV1) error {
	if rows == nil {
		rows = []api.EnrichmentRowV1{}
	}
	return jsonutil.EncodePretty(w, rows)
}

// WriteRankJSON writes ranked genes as a pretty JSON array.
func WriteRankJSON(w io.Writer, entries []api.RankEntryV1) error {
	if entries == nil {
		entries = []api.RankEntryV1{}
	}
	return jsonutil.EncodePretty(w, entries)
}
