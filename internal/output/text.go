// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"enrich/pkg/api"
)

// Header is the column line shared by the text and tsv formats.
const Header = "set_id\tname\tsource\tsize\thits\tes\tnes\tleading_edge\todds\tp_value\tadj_p_value"

// WriteText prints one tab-separated line per result row.
func WriteText(w io.Writer, rows []api.EnrichmentRowV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamText renders rows as they arrive on ch.
func StreamText(w io.Writer, ch <-chan api.EnrichmentRowV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
	}
	for r := range ch {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, r api.EnrichmentRowV1) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4g\t%.4g\t%d\t%.4g\t%.4g\t%.4g\n",
		r.SetID, r.Name, r.Source,
		r.Size, r.Hits,
		r.ES, r.NES, r.LeadingEdge, r.Odds,
		r.PValue, r.AdjPValue,
	)
	return err
}

// WriteRankText prints a ranked gene list as gene<TAB>score lines.
func WriteRankText(w io.Writer, entries []api.RankEntryV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "gene_id\tscore"); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%g\n", e.GeneID, e.Score); err != nil {
			return err
		}
	}
	return nil
}
