package miner

import (
	"fmt"
	"strings"
)

// domainQueries are site-restricted search templates. They are skipped
// when the domain is empty or has no dot.
var domainQueries = []string{
	`site:%s "contact us"`,
	`site:%s "registered office"`,
	`site:%s "email"`,
	`site:%s "phone"`,
	`site:%s "about us"`,
	`site:%s "management committee"`,
	`site:%s "AMFI"`,
}

// companyQueries are free-text templates qualified by the company name.
// They are skipped entirely when the company name is empty.
var companyQueries = []string{
	`"%s" contact email`,
	`"%s" management team`,
}

// sectorQueries are fixed queries included in every run.
var sectorQueries = []string{
	`"Association of Mutual Funds in India" email`,
	`"Association of Mutual Funds in India" contact`,
}

// SearchQueries builds the search query strings for a domain and optional
// company name. The templates are already distinct, so no deduplication
// is performed.
func SearchQueries(domain, companyName string) []string {
	var queries []string

	if domain != "" && strings.Contains(domain, ".") {
		for _, tmpl := range domainQueries {
			queries = append(queries, fmt.Sprintf(tmpl, domain))
		}
	}

	if companyName != "" {
		for _, tmpl := range companyQueries {
			queries = append(queries, fmt.Sprintf(tmpl, companyName))
		}
	}

	queries = append(queries, sectorQueries...)

	return queries
}

// IntentPaths are the fixed site paths likely to carry contact details.
// They may be seeded into the fetch stage alongside search candidates;
// the pipeline never follows links beyond this set.
var IntentPaths = []string{
	"/",
	"/about",
	"/about-us",
	"/team",
	"/leadership",
	"/management",
	"/contact",
}

// IntentURLs resolves IntentPaths against a domain. The domain may be
// bare ("acmecorp.com") or a full URL; the scheme defaults to https.
func IntentURLs(domain string) []string {
	base := domain
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	base = strings.TrimRight(base, "/")

	urls := make([]string, 0, len(IntentPaths))
	for _, path := range IntentPaths {
		if path == "/" {
			urls = append(urls, base+"/")
			continue
		}
		urls = append(urls, base+path)
	}
	return urls
}
