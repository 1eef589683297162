package content

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single content fetch; there are no retries.
const DefaultTimeout = 15 * time.Second

// Client talks to the remote content API. All read paths degrade to empty
// results instead of failing: a content section must never break because the
// backend is unreachable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a content API client for the given base URL
// (e.g. https://arka001.pythonanywhere.com/api).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// listEnvelope is the DRF paginated response shape.
type listEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// fetchList GETs {base}{path} and decodes the body into a slice of T. The
// endpoint may answer with a paginated envelope {"results": [...]} or a bare
// JSON array. Every failure mode — request build, transport, non-2xx status,
// decode, unexpected shape — is logged and collapsed to nil so callers can
// fall back to canned content.
func fetchList[T any](ctx context.Context, c *Client, path string) []T {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		log.Printf("[warn] content fetch path=%s error=%v", path, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[warn] content fetch path=%s error=%v", path, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[warn] content fetch path=%s status=%d", path, resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[warn] content fetch path=%s error=%v", path, err)
		return nil
	}

	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Results != nil {
		if err := json.Unmarshal(envelope.Results, &items); err == nil {
			return items
		}
	}

	log.Printf("[warn] content fetch path=%s unexpected response shape", path)
	return nil
}
