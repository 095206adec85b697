package miner

import "context"

// Fetcher retrieves the HTML content of a URL.
//
// The render flag requests script-executed rendering; implementations
// that cannot render ignore it and return static HTML. Any failure
// (timeout, non-2xx status, transport error) is reported as an error and
// callers treat it as "no content" for that URL, never as a reason to
// abort a whole run.
type Fetcher interface {
	Fetch(ctx context.Context, url string, render bool) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
