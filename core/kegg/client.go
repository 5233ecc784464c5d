// core/kegg/client.go
package kegg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public KEGG REST endpoint.
const DefaultBaseURL = "https://rest.kegg.jp"

// Client fetches pathway lists and gene→pathway links from the KEGG
// REST API. Zero-value fields fall back to DefaultBaseURL and a
// 30-second client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListPathways returns pathway id → name for an organism code
// (e.g. "hsa"), ids normalized without the "path:" prefix.
func (c *Client) ListPathways(ctx context.Context, org string) (map[string]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/list/pathway/%s", org))
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	return ParseList(body)
}

// LinkPathways returns gene → pathway ids for an organism, both sides
// normalized without their "hsa:"/"path:" prefixes.
func (c *Client) LinkPathways(ctx context.Context, org string) (map[string][]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/link/pathway/%s", org))
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	return ParseLink(body)
}

func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("kegg: GET %s: %s", path, resp.Status)
	}
	return resp.Body, nil
}
