package miner

// ContactExtractor extracts contact fragments from a fetched page.
type ContactExtractor interface {
	// ExtractContacts returns the contact fragments found in html.
	// Every returned fragment has at least one of Email or Phone set
	// and EvidenceURLs equal to [sourceURL]. When companyDomain is
	// non-empty, emails whose domain does not match it are dropped.
	// Malformed markup yields zero fragments, never an error.
	ExtractContacts(html, sourceURL, companyDomain string) []RawContact
}

// CompanyNamer extracts a display name for the company from page HTML.
type CompanyNamer interface {
	// ExtractCompanyName returns the best-guess company display name,
	// or "" when the page offers none.
	ExtractCompanyName(html string) string
}

// PersonExtractor extracts named people with explicit designations from
// page HTML.
type PersonExtractor interface {
	// ExtractPeople returns people whose name and title appear together
	// in html. Confidence is left for RankPeople to assign.
	ExtractPeople(html, sourceURL string) []Person
}
