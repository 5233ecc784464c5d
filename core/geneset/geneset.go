// core/geneset/geneset.go
package geneset

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Collection maps gene-set names to their members. Loaded collections
// are read-only; Filter returns a new Collection.
type Collection struct {
	Names []string // deterministic order
	Sets  map[string][]string
	Desc  map[string]string
}

// LoadGMT reads a tab-separated GMT file: name, description, members ...
// Duplicate set names are an error; duplicate members within a set are
// collapsed.
func LoadGMT(path string) (*Collection, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	c := &Collection{Sets: map[string][]string{}, Desc: map[string]string{}}
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64<<10), 8<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 3 {
			return nil, fmt.Errorf("%s:%d gene set needs name, description and at least one member", path, ln)
		}
		name := strings.TrimSpace(f[0])
		if name == "" {
			return nil, fmt.Errorf("%s:%d empty set name", path, ln)
		}
		if _, dup := c.Sets[name]; dup {
			return nil, fmt.Errorf("%s:%d duplicate set %q", path, ln, name)
		}
		seen := map[string]struct{}{}
		var members []string
		for _, g := range f[2:] {
			g = strings.TrimSpace(g)
			if g == "" {
				continue
			}
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			members = append(members, g)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("%s:%d set %q has no members", path, ln, name)
		}
		c.Names = append(c.Names, name)
		c.Sets[name] = members
		c.Desc[name] = strings.TrimSpace(f[1])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Filter restricts every set to members present in universe and drops
// sets whose restricted size falls outside [min, max] (max<=0 means
// unbounded). Name order is preserved.
func (c *Collection) Filter(universe map[string]struct{}, min, max int) *Collection {
	out := &Collection{Sets: map[string][]string{}, Desc: map[string]string{}}
	for _, name := range c.Names {
		var kept []string
		for _, g := range c.Sets[name] {
			if _, ok := universe[g]; ok {
				kept = append(kept, g)
			}
		}
		if len(kept) < min {
			continue
		}
		if max > 0 && len(kept) > max {
			continue
		}
		out.Names = append(out.Names, name)
		out.Sets[name] = kept
		out.Desc[name] = c.Desc[name]
	}
	return out
}

// FromMembership inverts a gene→categories mapping into a Collection
// with sorted names (used for KEGG link data and GO annotation maps).
func FromMembership(gene2cats map[string][]string) *Collection {
	c := &Collection{Sets: map[string][]string{}, Desc: map[string]string{}}
	for g, cats := range gene2cats {
		for _, cat := range cats {
			c.Sets[cat] = append(c.Sets[cat], g)
		}
	}
	for name, members := range c.Sets {
		sort.Strings(members)
		c.Sets[name] = members
		c.Names = append(c.Names, name)
	}
	sort.Strings(c.Names)
	return c
}
