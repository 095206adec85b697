package miner

// Role labels assigned during extraction. A role is only set when one of
// its trigger phrases appears verbatim in page text, never inferred from
// job-title-shaped text alone.
const (
	RolePMS               = "PMS"
	RoleInsuranceAgent    = "Insurance Agent"
	RoleIFA               = "IFA"
	RoleMutualFund        = "Mutual Fund"
	RoleInvestmentAdvisor = "Investment Advisor"
)

// Candidate represents a URL discovered via search, not yet fetched.
// Created by a SearchResultParser with Score unset; the score is assigned
// once during discovery and the candidate is immutable thereafter.
type Candidate struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  Engine `json:"source"`
	Score   int    `json:"relevance_score"`
}

// RawContact is a contact fragment extracted from a single page.
// At least one of Email or Phone is non-empty; extractors never construct
// records with neither. Source identifies the engine that discovered the
// page, or EngineNone for seeded URLs.
type RawContact struct {
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Role         string   `json:"role"`
	Source       Engine   `json:"source,omitempty"`
	EvidenceURLs []string `json:"evidence_urls"`
}

// MergedContact is the result of unifying RawContacts that share an email
// or phone. EvidenceURLs holds the union of the fragments' source pages
// and Sources the union of their discovery engines. Confidence and
// ConfidenceReasons are written once by the confidence scorer.
type MergedContact struct {
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Role              string   `json:"role"`
	Confidence        int      `json:"confidence"`
	ConfidenceReasons []string `json:"confidence_reasons"`
	EvidenceURLs      []string `json:"evidence_urls"`
	Sources           []Engine `json:"-"`
}
