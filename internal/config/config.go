// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML run configuration. Values act as defaults;
// explicitly-set flags always win (the apps only consult fields whose
// flags were left at their zero/default value).
type File struct {
	GSEA struct {
		Permutations int   `toml:"permutations"`
		MinSetSize   int   `toml:"min_set_size"`
		MaxSetSize   int   `toml:"max_set_size"`
		Seed         int64 `toml:"seed"`
	} `toml:"gsea"`

	GO struct {
		Bins       int    `toml:"bins"`
		Method     string `toml:"method"`
		Iterations int    `toml:"iterations"`
	} `toml:"go"`

	KEGG struct {
		Organism string `toml:"organism"`
		BaseURL  string `toml:"base_url"`
	} `toml:"kegg"`
}

// Load parses a TOML run-config file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return &f, nil
}

// KEGGBaseURL resolves the KEGG endpoint: a .env file in the working
// directory is loaded if present, then ENRICH_KEGG_URL wins over the
// config file value. Empty means "use the library default".
func KEGGBaseURL(cfg *File) string {
	_ = godotenv.Load()
	if v := os.Getenv("ENRICH_KEGG_URL"); v != "" {
		return v
	}
	if cfg != nil {
		return cfg.KEGG.BaseURL
	}
	return ""
}
