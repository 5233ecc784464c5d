// core/detable/reader.go
package detable

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns names the table headers to read each field from. Matching is
// case-insensitive. Length and FDR may be absent from the file; the
// others are required.
type Columns struct {
	GeneID string
	LogFC  string
	PValue string
	FDR    string
	Length string
}

// DefaultColumns match the header names used by the usual DE callers
// (edgeR/limma-style exports).
func DefaultColumns() Columns {
	return Columns{
		GeneID: "gene_id",
		LogFC:  "logFC",
		PValue: "PValue",
		FDR:    "FDR",
		Length: "median_length",
	}
}

// ReadFile loads a DE result table from a TSV (default) or CSV file,
// chosen by extension. The first non-comment line must be a header.
// Rows with a missing identifier are excluded and counted; for a
// duplicated identifier the first row wins.
func ReadFile(path string, cols Columns) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.Comma = '\t'
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		r.Comma = ','
	}
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %v", path, err)
	}
	idx, err := mapHeader(header, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}

	t := &Table{}
	seen := make(map[string]struct{})
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// FieldPos gives the physical line, so '#' comments consumed
		// by the reader do not skew error positions.
		ln, _ := r.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		row, ok, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("%s:%d %v", path, ln, err)
		}
		if !ok {
			t.MissingIDs++
			continue
		}
		if _, dup := seen[row.GeneID]; dup {
			t.Duplicates++
			continue
		}
		seen[row.GeneID] = struct{}{}
		t.Records = append(t.Records, row)
	}
	return t, nil
}

type colIndex struct {
	gene, logfc, pval, fdr, length int // -1 when the column is absent
}

func mapHeader(header []string, cols Columns) (colIndex, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	idx := colIndex{
		gene:   find(cols.GeneID),
		logfc:  find(cols.LogFC),
		pval:   find(cols.PValue),
		fdr:    find(cols.FDR),
		length: find(cols.Length),
	}
	switch {
	case idx.gene < 0:
		return idx, fmt.Errorf("missing column %q", cols.GeneID)
	case idx.logfc < 0:
		return idx, fmt.Errorf("missing column %q", cols.LogFC)
	case idx.pval < 0:
		return idx, fmt.Errorf("missing column %q", cols.PValue)
	}
	return idx, nil
}

func parseRow(rec []string, idx colIndex) (Record, bool, error) {
	var row Record
	get := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	row.GeneID = get(idx.gene)
	if row.GeneID == "" || strings.EqualFold(row.GeneID, "NA") {
		return row, false, nil
	}

	num := func(i int, name string) (float64, error) {
		s := get(i)
		if s == "" || strings.EqualFold(s, "NA") {
			return math.NaN(), nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q", name, s)
		}
		return v, nil
	}

	var err error
	if row.LogFC, err = num(idx.logfc, "logFC"); err != nil {
		return row, false, err
	}
	if row.PValue, err = num(idx.pval, "p-value"); err != nil {
		return row, false, err
	}
	if row.FDR, err = num(idx.fdr, "FDR"); err != nil {
		return row, false, err
	}
	if row.Length, err = num(idx.length, "length"); err != nil {
		return row, false, err
	}
	return row, true, nil
}
