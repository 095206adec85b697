// Package zenrows provides a miner.Fetcher backed by the ZenRows scraping
// API, which handles proxy rotation, anti-bot measures and script
// rendering on the provider side.
package zenrows

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	miner "github.com/Raavan18/b2b-data-miner"
)

// apiURL is the ZenRows API endpoint.
const apiURL = "https://api.zenrows.com/v1/"

// DefaultFetchTimeout is generous because rendered fetches run a headless
// browser on the provider side before returning.
const DefaultFetchTimeout = 60 * time.Second

// renderWaitMillis is how long the provider waits for scripts to settle
// after page load when rendering is requested.
const renderWaitMillis = 2000

var _ miner.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content through the ZenRows API.
type Fetcher struct {
	apiKey  string
	client  *http.Client
	timeout time.Duration
	baseURL string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultFetchTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// NewFetcher creates a new ZenRows-backed Fetcher.
// An API key is required.
func NewFetcher(apiKey string, opts ...Option) (*Fetcher, error) {
	if apiKey == "" {
		return nil, miner.Errorf(miner.ECONFIG, "ZenRows API key required")
	}

	f := &Fetcher{
		apiKey:  apiKey,
		timeout: DefaultFetchTimeout,
		baseURL: apiURL,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f, nil
}

// Fetch retrieves the HTML content of the target URL through the API.
// When render is true the request asks for script execution with a short
// settle wait, which is what dynamic contact pages need.
func (f *Fetcher) Fetch(ctx context.Context, target string, render bool) (string, error) {
	params := url.Values{}
	params.Set("apikey", f.apiKey)
	params.Set("js_render", strconv.FormatBool(render))
	params.Set("url", target)
	if render {
		params.Set("wait", strconv.Itoa(renderWaitMillis))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the API client this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
