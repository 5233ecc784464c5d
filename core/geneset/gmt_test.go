// core/geneset/gmt_test.go
package geneset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeGMT(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sets.gmt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGMT(t *testing.T) {
	c, err := LoadGMT(writeGMT(t,
		"PATH_A\tfirst set\tg1\tg2\tg3\n"+
			"# comment\n"+
			"PATH_B\t\tg2\tg4\tg4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"PATH_A", "PATH_B"}; !reflect.DeepEqual(c.Names, want) {
		t.Errorf("names = %v, want %v", c.Names, want)
	}
	if want := []string{"g2", "g4"}; !reflect.DeepEqual(c.Sets["PATH_B"], want) {
		t.Errorf("PATH_B members = %v, want %v (duplicates collapsed)", c.Sets["PATH_B"], want)
	}
	if c.Desc["PATH_A"] != "first set" {
		t.Errorf("description lost: %q", c.Desc["PATH_A"])
	}
}

func TestLoadGMTErrors(t *testing.T) {
	cases := []struct {
		name, content string
	}{
		{"too few fields", "ONLY_NAME\tdesc\n"},
		{"duplicate set", "A\td\tg1\nA\td\tg2\n"},
		{"empty members", "A\td\t\t\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadGMT(writeGMT(t, tc.content)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	c := &Collection{
		Names: []string{"A", "B", "C"},
		Sets: map[string][]string{
			"A": {"g1", "g2", "g3"},
			"B": {"g1", "gX"},
			"C": {"gX", "gY"},
		},
		Desc: map[string]string{"A": "", "B": "", "C": ""},
	}
	universe := map[string]struct{}{"g1": {}, "g2": {}, "g3": {}}

	got := c.Filter(universe, 1, 0)
	if want := []string{"A", "B"}; !reflect.DeepEqual(got.Names, want) {
		t.Errorf("names = %v, want %v", got.Names, want)
	}
	if want := []string{"g1"}; !reflect.DeepEqual(got.Sets["B"], want) {
		t.Errorf("B members = %v, want %v", got.Sets["B"], want)
	}

	if got := c.Filter(universe, 2, 0); len(got.Names) != 1 || got.Names[0] != "A" {
		t.Errorf("min-size filter kept %v", got.Names)
	}
	if got := c.Filter(universe, 1, 2); !reflect.DeepEqual(got.Names, []string{"B"}) {
		t.Errorf("max-size filter kept %v", got.Names)
	}
}

func TestFromMembership(t *testing.T) {
	c := FromMembership(map[string][]string{
		"g2": {"P1"},
		"g1": {"P1", "P2"},
	})
	if want := []string{"P1", "P2"}; !reflect.DeepEqual(c.Names, want) {
		t.Errorf("names = %v, want %v", c.Names, want)
	}
	if want := []string{"g1", "g2"}; !reflect.DeepEqual(c.Sets["P1"], want) {
		t.Errorf("P1 members = %v, want %v", c.Sets["P1"], want)
	}
}
