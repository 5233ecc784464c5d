// core/kegg/parse.go
package kegg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// stripPrefix drops a "db:" qualifier ("path:hsa00010" → "hsa00010",
// "hsa:10327" → "10327"). Bare identifiers pass through.
func stripPrefix(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// ParseList reads the /list/pathway/<org> wire format: one
// "id<TAB>name" pair per line.
func ParseList(r io.Reader) (map[string]string, error) {
	out := map[string]string{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.SplitN(line, "\t", 2)
		if len(f) != 2 {
			return nil, fmt.Errorf("kegg list:%d bad field count", ln)
		}
		out[stripPrefix(strings.TrimSpace(f[0]))] = strings.TrimSpace(f[1])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseLink reads the /link/pathway/<org> wire format: one
// "gene<TAB>pathway" pair per line, accumulated into gene → pathways.
func ParseLink(r io.Reader) (map[string][]string, error) {
	out := map[string][]string{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("kegg link:%d bad field count", ln)
		}
		gene := stripPrefix(f[0])
		path := stripPrefix(f[1])
		out[gene] = append(out[gene], path)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadListFile and LoadLinkFile read local snapshots of the two
// endpoints for offline runs.
func LoadListFile(path string) (map[string]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseList(fh)
}

func LoadLinkFile(path string) (map[string][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseLink(fh)
}
