package goquery

import (
	"net/url"
	"strings"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.SearchResultParser = (*GoogleParser)(nil)

// GoogleParser parses Google search result pages.
type GoogleParser struct{}

// NewGoogleParser creates a new GoogleParser.
func NewGoogleParser() *GoogleParser {
	return &GoogleParser{}
}

// Engine returns the engine identifier.
func (p *GoogleParser) Engine() miner.Engine {
	return miner.EngineGoogle
}

// SearchURL builds the search page URL for a query.
func (p *GoogleParser) SearchURL(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query) + "&num=10"
}

// ParseResults extracts organic results from a Google result page.
//
// Result blocks have used div.g, div.MjjYud, and div[data-hveid] across
// markup revisions; titles live in h3 and snippets in .VwiC3b or its
// predecessors. Redirect hrefs of the form /url?q=<target> are unwrapped.
func (p *GoogleParser) ParseResults(html string) []miner.Candidate {
	return parseResults(html, resultConfig{
		engine:     miner.EngineGoogle,
		baseURL:    "https://www.google.com",
		containers: []string{"div.g", "div.MjjYud", "div[data-hveid]"},
		link:       []string{"a[href]"},
		title:      []string{"h3"},
		snippet:    []string{".VwiC3b", ".IsZvec", "span.st"},
		unwrap:     unwrapGoogleRedirect,
	})
}

// unwrapGoogleRedirect extracts the target URL from a /url?q= redirect href.
func unwrapGoogleRedirect(href string) string {
	if !strings.HasPrefix(href, "/url?") {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("q"); target != "" {
		return target
	}
	return href
}
