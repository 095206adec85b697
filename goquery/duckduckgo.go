package goquery

import (
	"net/url"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.SearchResultParser = (*DuckDuckGoParser)(nil)

// DuckDuckGoParser parses DuckDuckGo HTML-version search result pages.
// The html.duckduckgo.com endpoint serves static markup, so results are
// available without script rendering.
type DuckDuckGoParser struct{}

// NewDuckDuckGoParser creates a new DuckDuckGoParser.
func NewDuckDuckGoParser() *DuckDuckGoParser {
	return &DuckDuckGoParser{}
}

// Engine returns the engine identifier.
func (p *DuckDuckGoParser) Engine() miner.Engine {
	return miner.EngineDuckDuckGo
}

// SearchURL builds the search page URL for a query.
func (p *DuckDuckGoParser) SearchURL(query string) string {
	return "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)
}

// ParseResults extracts organic results from a DuckDuckGo result page.
//
// Result hrefs point at the duckduckgo.com/l/ redirect with the target
// percent-encoded in the uddg parameter.
func (p *DuckDuckGoParser) ParseResults(html string) []miner.Candidate {
	return parseResults(html, resultConfig{
		engine:     miner.EngineDuckDuckGo,
		baseURL:    "https://html.duckduckgo.com",
		containers: []string{"div.result", "div.web-result"},
		link:       []string{"a.result__a", "a[href]"},
		title:      []string{"a.result__a", "h2"},
		snippet:    []string{".result__snippet"},
		unwrap:     unwrapDuckDuckGoRedirect,
	})
}

// unwrapDuckDuckGoRedirect extracts the target URL from the uddg parameter
// of a duckduckgo.com/l/ redirect href.
func unwrapDuckDuckGoRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
