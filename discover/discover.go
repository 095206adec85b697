// Package discover finds candidate contact pages by querying search engines.
//
// A Discoverer fans a set of domain-targeted queries out to every configured
// search engine, parses the result pages, and scores each candidate URL for
// contact relevance. Supporting types handle fetch ordering (Queue), per-host
// rate limiting (DomainLimiter), and fetch retries.
package discover

import (
	"context"
	"net/url"
	"sort"
	"time"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.DiscoveryService = (*Discoverer)(nil)

// Discoverer implements miner.DiscoveryService against live search engines.
type Discoverer struct {
	Fetcher     miner.Fetcher
	Parsers     []miner.SearchResultParser
	RateLimiter miner.DomainLimiter
	RetryDelays []time.Duration
}

// Discover runs every query against every configured engine and returns the
// scored, deduplicated candidates ordered by descending relevance.
//
// A query whose search page cannot be fetched is skipped; only context
// cancellation aborts the whole discovery. Duplicate URLs keep the first
// result encountered, so earlier queries and engines win.
func (d *Discoverer) Discover(ctx context.Context, domain, companyName string) (*miner.Discovery, error) {
	if domain == "" {
		return nil, miner.Errorf(miner.EINVALID, "domain required")
	}

	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	queries := miner.SearchQueries(domain, companyName)
	seen := make(map[string]struct{})

	discovery := &miner.Discovery{}
	for _, query := range queries {
		for _, parser := range d.Parsers {
			searchURL := parser.SearchURL(query)
			discovery.SearchURLs = append(discovery.SearchURLs, searchURL)

			parsed, err := url.Parse(searchURL)
			if err != nil {
				continue
			}
			if d.RateLimiter != nil {
				if err := d.RateLimiter.Wait(ctx, parsed.Host); err != nil {
					return nil, err
				}
			}

			fetchFn := func(ctx context.Context, u string) (string, error) {
				return d.Fetcher.Fetch(ctx, u, false)
			}
			html, err := FetchWithRetryDelays(ctx, searchURL, fetchFn, nil, delays)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}

			for _, candidate := range parser.ParseResults(html) {
				if _, ok := seen[candidate.URL]; ok {
					continue
				}
				seen[candidate.URL] = struct{}{}
				candidate.Score = miner.ScoreCandidate(candidate, domain)
				discovery.Candidates = append(discovery.Candidates, candidate)
			}
		}
	}

	sort.SliceStable(discovery.Candidates, func(i, j int) bool {
		return discovery.Candidates[i].Score > discovery.Candidates[j].Score
	})

	return discovery, nil
}
