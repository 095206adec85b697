package miner

import (
	"net/url"
	"strings"
)

// FetchThreshold is the minimum relevance score a candidate needs to be
// fetched.
const FetchThreshold = 40

// contactKeywords signal contact or team intent in a result's title or
// snippet.
var contactKeywords = []string{
	"contact", "about", "leadership", "team", "management", "email", "phone",
}

// roleKeywords signal the target roles in a result's title or snippet.
var roleKeywords = []string{
	"pms", "insurance agent", "investment advisor", "ifa", "mutual fund",
	"portfolio manager", "independent financial advisor", "amfi",
}

// ScoreCandidate assigns a relevance score to a discovered candidate.
//
// Domain match is a hard gate: when the candidate's host and the target
// domain share no substring relationship in either direction (after
// lower-casing and stripping a leading www prefix), the score is 0
// regardless of any other signal. Candidates that pass the gate collect
// additive bonuses from the concatenated title and snippet.
func ScoreCandidate(c Candidate, targetDomain string) int {
	if !DomainsMatch(c.URL, targetDomain) {
		return 0
	}

	text := strings.ToLower(c.Title + " " + c.Snippet)
	score := 0

	if containsAny(text, contactKeywords) {
		score += 30
	}
	if strings.Contains(text, "email") || strings.Contains(text, "phone") || strings.Contains(text, "@") {
		score += 40
	}
	if containsAny(text, roleKeywords) {
		score += 40
	}

	return score
}

// FetchWorthy reports whether a candidate's score clears FetchThreshold.
// The domain gate is already part of the score, so a 0-scored off-domain
// candidate is never fetch-worthy.
func FetchWorthy(c Candidate, targetDomain string) bool {
	if c.Score < FetchThreshold {
		return false
	}
	return DomainsMatch(c.URL, targetDomain)
}

// DomainsMatch reports whether the URL's host matches the target domain,
// substring in either direction after normalization.
func DomainsMatch(rawURL, targetDomain string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := NormalizeDomain(u.Host)
	target := NormalizeDomain(targetDomain)
	if host == "" || target == "" {
		return false
	}
	return strings.Contains(host, target) || strings.Contains(target, host)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
