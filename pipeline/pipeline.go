// Package pipeline provides contact mining orchestration.
// It coordinates search discovery, page fetching, contact extraction,
// and report assembly for a single company domain.
package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Compile-time interface verification.
var _ miner.MiningService = (*Pipeline)(nil)

// Queue configuration for one mining run.
const (
	// queueExpectedURLs is the expected number of URLs for Bloom filter sizing.
	queueExpectedURLs = 1000
	// queueFalsePositiveRate is the acceptable false positive rate for deduplication.
	queueFalsePositiveRate = 0.01
)

// Pipeline orchestrates the mining of contact data for one company.
// Discovery, Fetcher and Contacts are required; the remaining
// collaborators are optional and skipped when nil.
type Pipeline struct {
	Discovery miner.DiscoveryService
	Fetcher   miner.Fetcher
	Contacts  miner.ContactExtractor

	// Names resolves the company display name from the top candidate's
	// page. When nil the caller-supplied name is kept.
	Names miner.CompanyNamer

	// People extracts named people with designations from fetched pages.
	People miner.PersonExtractor

	// RateLimiter paces page fetches per target host.
	RateLimiter miner.DomainLimiter

	// Reports persists each completed run.
	Reports miner.ReportService

	// Concurrency sets the number of parallel page fetches. Values below
	// 2 keep the sequential default; higher values preserve the same
	// final ordering and result set.
	Concurrency int

	// MaxFetch bounds the number of fetch attempts per run.
	// Zero means no bound.
	MaxFetch int

	// SeedIntentPaths queues the fixed intent paths on the target domain
	// at threshold priority, below any scored search hit.
	SeedIntentPaths bool

	// Progress, if provided, receives events as the run proceeds.
	Progress ProgressFunc
}

// ProgressEvent reports progress during a mining run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDiscovering ProgressType = iota
	ProgressFetching
	ProgressFetched
	ProgressFetchFailed
	ProgressScoring
	ProgressFinished
)

// ProgressFunc is a callback for reporting mining progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of fetching a single queued URL.
type pageResult struct {
	url  string
	html string
	err  error
}

// Mine runs the full pipeline for one domain and returns its report.
//
// Every stage absorbs per-item failures: a page that cannot be fetched or
// parsed reduces the counters, never aborts the run. Only an empty domain,
// context cancellation, a discovery-wide failure, or a persistence failure
// surface as errors.
func (p *Pipeline) Mine(ctx context.Context, domain, companyName string) (*miner.Report, error) {
	companyDomain := normalizeDomain(domain)
	if companyDomain == "" {
		return nil, miner.Errorf(miner.EINVALID, "domain required")
	}

	report := &miner.Report{
		CompanyName:   companyName,
		CompanyDomain: companyDomain,
		Contacts:      []*miner.MergedContact{},
	}

	p.notify(ProgressEvent{Type: ProgressDiscovering, URL: companyDomain})

	discovery, err := p.Discovery.Discover(ctx, companyDomain, companyName)
	if err != nil {
		return nil, err
	}

	candidates := discovery.Candidates
	report.Meta.CandidatesDiscovered = len(candidates)
	report.Meta.DiscoveryURLs = make([]string, len(candidates))
	sources := make(map[string]miner.Engine, len(candidates))
	for i, c := range candidates {
		report.Meta.DiscoveryURLs[i] = c.URL
		sources[c.URL] = c.Source
	}

	// Filter keeps the candidates' score-descending order.
	filtered := make([]miner.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if miner.FetchWorthy(c, companyDomain) {
			filtered = append(filtered, c)
		}
	}

	queue := NewQueue(queueExpectedURLs, queueFalsePositiveRate)
	for _, c := range filtered {
		queue.Push(miner.FetchTarget{URL: c.URL, Priority: c.Score})
	}
	if p.SeedIntentPaths {
		for _, seedURL := range miner.IntentURLs(companyDomain) {
			queue.Push(miner.FetchTarget{URL: seedURL, Priority: miner.FetchThreshold})
		}
	}

	// Drain into fetch order up front; nothing pushes mid-run.
	var targets []miner.FetchTarget
	for {
		if p.MaxFetch > 0 && len(targets) >= p.MaxFetch {
			break
		}
		target, ok := queue.Pop()
		if !ok {
			break
		}
		targets = append(targets, target)
	}

	report.Meta.URLsFetched = len(targets)
	report.Meta.FetchURLs = make([]string, len(targets))
	for i, target := range targets {
		report.Meta.FetchURLs[i] = target.URL
	}

	p.notify(ProgressEvent{Type: ProgressFetching, Total: len(targets)})

	results := make([]pageResult, len(targets))
	if p.Concurrency > 1 {
		err = p.fetchConcurrent(ctx, targets, results)
	} else {
		err = p.fetchSequential(ctx, targets, results)
	}
	if err != nil {
		return nil, err
	}

	topURL := ""
	if len(filtered) > 0 {
		topURL = filtered[0].URL
	}

	// Process results in fetch order so identical inputs always yield
	// identically ordered contacts, regardless of concurrency.
	seenContent := make(map[string]bool)
	var rawContacts []miner.RawContact
	var people []miner.Person
	var topHTML string

	for _, result := range results {
		if result.err != nil {
			continue
		}
		if result.url == topURL && topHTML == "" {
			topHTML = result.html
		}

		// Mirror pages with identical content must not inflate evidence.
		hash := contentHash(result.html)
		if seenContent[hash] {
			continue
		}
		seenContent[hash] = true

		contacts := p.Contacts.ExtractContacts(result.html, result.url, companyDomain)
		engine := sources[result.url]
		for i := range contacts {
			contacts[i].Source = engine
		}
		rawContacts = append(rawContacts, contacts...)

		if p.People != nil {
			people = append(people, p.People.ExtractPeople(result.html, result.url)...)
		}
	}

	report.Meta.ContactsExtracted = len(rawContacts)

	p.notify(ProgressEvent{Type: ProgressScoring, Total: len(rawContacts)})

	merged := miner.MergeContacts(rawContacts)
	accepted := make([]*miner.MergedContact, 0, len(merged))
	for _, contact := range merged {
		miner.ScoreConfidence(contact, companyDomain)
		if miner.AcceptContact(contact) {
			accepted = append(accepted, contact)
		}
	}
	report.Contacts = accepted
	report.Meta.ContactsAccepted = len(accepted)

	if len(people) > 0 {
		report.People = miner.RankPeople(people)
	}

	// The top candidate's page names the company. Reuse its HTML when the
	// fetch stage already retrieved it.
	if p.Names != nil && topURL != "" {
		html := topHTML
		if html == "" {
			html = p.fetchPage(ctx, topURL).html
		}
		if html != "" {
			if name := p.Names.ExtractCompanyName(html); name != "" {
				report.CompanyName = name
			}
		}
	}

	if p.Reports != nil {
		run := &miner.Run{
			Domain:      companyDomain,
			CompanyName: report.CompanyName,
			Report:      report,
		}
		if err := p.Reports.CreateRun(ctx, run); err != nil {
			return nil, err
		}
	}

	p.notify(ProgressEvent{Type: ProgressFinished, Completed: len(targets), Total: len(targets)})

	return report, nil
}

// fetchSequential fetches targets one at a time in queue order.
func (p *Pipeline) fetchSequential(ctx context.Context, targets []miner.FetchTarget, results []pageResult) error {
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = p.fetchPage(ctx, target.URL)
		p.notifyFetch(results[i], i+1, len(targets))
	}
	return nil
}

// fetchConcurrent fetches targets with a bounded worker pool. Each worker
// writes only its own slot, so results keep queue order.
func (p *Pipeline) fetchConcurrent(ctx context.Context, targets []miner.FetchTarget, results []pageResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Concurrency)

	var completed atomic.Int64
	for i, target := range targets {
		g.Go(func() error {
			results[i] = p.fetchPage(gctx, target.URL)
			p.notifyFetch(results[i], int(completed.Add(1)), len(targets))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// fetchPage rate-limits and fetches one URL with rendering requested.
func (p *Pipeline) fetchPage(ctx context.Context, rawURL string) pageResult {
	result := pageResult{url: rawURL}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
			result.err = err
			return result
		}
	}

	result.html, result.err = p.Fetcher.Fetch(ctx, rawURL, true)
	return result
}

func (p *Pipeline) notify(event ProgressEvent) {
	if p.Progress != nil {
		p.Progress(event)
	}
}

func (p *Pipeline) notifyFetch(result pageResult, completed, total int) {
	if p.Progress == nil {
		return
	}
	event := ProgressEvent{
		Type:      ProgressFetched,
		Completed: completed,
		Total:     total,
		URL:       result.url,
	}
	if result.err != nil {
		event.Type = ProgressFetchFailed
		event.Error = result.err
	}
	p.Progress(event)
}

// normalizeDomain reduces a raw domain argument to its host, accepting
// values given with or without a scheme.
func normalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	withScheme := raw
	if !strings.Contains(raw, "://") {
		withScheme = "https://" + raw
	}
	u, err := url.Parse(withScheme)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

// hostOf extracts the host for rate limiting. Unparseable URLs fall back
// to the raw string so pacing still applies.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
