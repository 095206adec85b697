package miner

import "context"

// Engine identifies a search engine used during discovery.
type Engine string

// Supported search engines. EngineNone marks pages that were not
// discovered through search, such as seeded intent-path URLs.
const (
	EngineNone       Engine = ""
	EngineGoogle     Engine = "google"
	EngineDuckDuckGo Engine = "duckduckgo"
)

// SearchResultParser adapts one search engine: it builds the engine's
// result-page URL for a query and parses the engine's result HTML into
// candidates.
type SearchResultParser interface {
	// Engine returns the engine whose markup this parser understands.
	Engine() Engine

	// SearchURL returns the result-page URL for the given query string.
	SearchURL(query string) string

	// ParseResults extracts candidates from raw result HTML. Each
	// candidate has URL, Title, Snippet and Source populated; Score is
	// left unset. Malformed or unrecognized markup yields zero
	// candidates, never an error.
	ParseResults(html string) []Candidate
}

// Discovery holds the outcome of the discovery stage.
type Discovery struct {
	// Candidates is deduplicated by exact URL (first occurrence wins)
	// and sorted by score descending with discovery order preserved
	// among ties.
	Candidates []Candidate

	// SearchURLs lists the engine result-page URLs that were fetched,
	// in request order.
	SearchURLs []string
}

// DiscoveryService discovers scored candidate URLs for a target domain.
type DiscoveryService interface {
	Discover(ctx context.Context, domain, companyName string) (*Discovery, error)
}

// DomainLimiter enforces per-domain request pacing.
type DomainLimiter interface {
	// Wait blocks until a request to the domain is allowed or the
	// context is canceled.
	Wait(ctx context.Context, domain string) error
}
