package dnstxt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver fetches TXT records through a DNS-over-HTTPS JSON endpoint
// (Google and Cloudflare speak the same wire format). It performs no caching
// and no retries; transport reliability is the endpoint's concern.
type Resolver struct {
	baseURL string
	client  HTTPDoer
}

// ResolverConfig configures a DNS-over-HTTPS resolver.
type ResolverConfig struct {
	// BaseURL is the resolve endpoint, e.g. "https://dns.google/resolve".
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient HTTPDoer
}

// NewResolver creates a DNS-over-HTTPS TXT resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Resolver{baseURL: cfg.BaseURL, client: client}
}

// dohResponse is the subset of the DNS JSON API response we consume.
type dohResponse struct {
	Status int `json:"Status"`
	Answer []struct {
		Type int    `json:"type"`
		Data string `json:"data"`
	} `json:"Answer"`
}

// txtRRType is the DNS resource record type number for TXT.
const txtRRType = 16

// Lookup returns all openatts records published under domain, preserving the
// answer order from the resolver. A domain with no TXT records (or no
// openatts records among them) yields an empty slice, not an error.
func (r *Resolver) Lookup(ctx context.Context, domain string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s?name=%s&type=TXT", r.baseURL, url.QueryEscape(domain))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build dns query: %w", err)
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", domain, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query %s: unexpected status %d", domain, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dns response: %w", err)
	}

	var parsed dohResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal dns response: %w", err)
	}

	records := make([]Record, 0, len(parsed.Answer))
	for _, answer := range parsed.Answer {
		if answer.Type != txtRRType {
			continue
		}
		if rec, ok := ParseRecord(answer.Data); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
