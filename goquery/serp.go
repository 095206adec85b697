// Package goquery implements search result parsing and page extraction
// using CSS selectors.
//
// Search engines change their markup frequently, so each parser tries an
// ordered list of selectors and uses the first one that matches anything.
// Page extraction never fails on malformed markup; it extracts what it can.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	miner "github.com/Raavan18/b2b-data-miner"
)

// resultConfig describes how to pull organic results out of a search
// engine's HTML.
type resultConfig struct {
	engine     miner.Engine
	baseURL    string
	containers []string
	link       []string
	title      []string
	snippet    []string
	unwrap     func(href string) string
}

// parseResults extracts organic search results from a result page.
// Malformed markup yields zero results rather than an error.
func parseResults(html string, cfg resultConfig) []miner.Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil
	}

	// Container selectors are tried in order; the first that matches wins.
	var containers *goquery.Selection
	for _, selector := range cfg.containers {
		if sel := doc.Find(selector); sel.Length() > 0 {
			containers = sel
			break
		}
	}
	if containers == nil {
		return nil
	}

	var candidates []miner.Candidate
	containers.Each(func(_ int, sel *goquery.Selection) {
		var href string
		for _, linkSelector := range cfg.link {
			if h, ok := sel.Find(linkSelector).Attr("href"); ok && h != "" {
				href = h
				break
			}
		}
		if href == "" || isNonHTTPLink(href) {
			return
		}

		if cfg.unwrap != nil {
			href = cfg.unwrap(href)
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		// Engines link back to themselves (cached copies, image tabs,
		// sign-in pages); none of those are mining candidates.
		target, err := url.Parse(resolved)
		if err != nil || isSearchEngineHost(target.Host) {
			return
		}

		candidates = append(candidates, miner.Candidate{
			URL:     resolved,
			Title:   firstText(sel, cfg.title),
			Snippet: firstText(sel, cfg.snippet),
			Source:  cfg.engine,
		})
	})

	return candidates
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(sel *goquery.Selection, selectors []string) string {
	for _, s := range selectors {
		if found := sel.Find(s).First(); found.Length() > 0 {
			return strings.TrimSpace(found.Text())
		}
	}
	return ""
}

// resolveURL resolves a relative URL against a base URL.
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isSearchEngineHost checks if a host belongs to one of the supported
// search engines, including Google's cached-copy host.
func isSearchEngineHost(host string) bool {
	host = strings.ToLower(host)
	return strings.Contains(host, "google.") ||
		strings.Contains(host, "googleusercontent.com") ||
		strings.Contains(host, "duckduckgo.com")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
