package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL serves the shared command document.
const DefaultURL = "https://raw.githubusercontent.com/vercel-labs/web-interface-guidelines/main/command.md"

const userAgent = "web-interface-guidelines-installer"

// Fetcher retrieves the command document over HTTPS.
type Fetcher struct {
	url    string
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher for the given URL. An empty URL means
// DefaultURL.
func NewFetcher(url string, opts ...Option) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	f := &Fetcher{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the document URL this fetcher reads from.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads and parses the command document.
func (f *Fetcher) Fetch(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("document not found at %s", f.url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: server returned status %d", f.url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return Parse(body), nil
}
