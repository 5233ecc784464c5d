// core/rank/rnk.go
package rank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteRNK emits the ranking as the two-column tab-separated .rnk
// format understood by the usual GSEA tooling, in descending order.
func WriteRNK(w io.Writer, v Vector) error {
	for _, id := range v.Order {
		if _, err := fmt.Fprintf(w, "%s\t%g\n", id, v.Score[id]); err != nil {
			return err
		}
	}
	return nil
}

// ReadRNK loads a .rnk file. Lines are "gene<TAB>score"; blanks and
// '#' comments are skipped. Duplicate genes keep the first score.
func ReadRNK(path string) (Vector, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Vector{}, err
	}
	defer func() { _ = fh.Close() }()

	v := Vector{Score: map[string]float64{}}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return Vector{}, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		s, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return Vector{}, fmt.Errorf("%s:%d bad score: %v", path, ln, err)
		}
		if _, dup := v.Score[f[0]]; dup {
			continue
		}
		v.Score[f[0]] = s
		v.Order = append(v.Order, f[0])
	}
	if err := sc.Err(); err != nil {
		return Vector{}, err
	}
	sortDescending(&v)
	return v, nil
}
