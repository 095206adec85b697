package miner

import (
	"regexp"
	"strings"
)

// EmailPattern matches email addresses in raw HTML or text.
var EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// personalEmailDomains are webmail providers. Emails on these domains are
// never treated as business contacts.
var personalEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"yahoo.co.in":    true,
	"yahoo.co.uk":    true,
	"hotmail.co.uk":  true,
	"live.com":       true,
	"msn.com":        true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"mail.com":       true,
	"yandex.com":     true,
	"zoho.com":       true,
	"rediffmail.com": true,
	"rediff.com":     true,
	"inbox.com":      true,
	"gmx.com":        true,
}

// junkEmailSuffixes are file extensions that produce email-shaped false
// positives in markup, such as image srcset entries.
var junkEmailSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".css", ".js",
}

// placeholderEmailDomains appear in documentation and form hints, never
// in real contact details.
var placeholderEmailDomains = []string{
	"example.com", "domain.com", "email.com", "yourcompany.com",
}

// IsBusinessEmail reports whether the email is usable as a business
// contact: well-formed, not on a personal webmail domain, not an
// email-shaped asset name or documentation placeholder.
func IsBusinessEmail(email string) bool {
	if email == "" || !strings.Contains(email, "@") {
		return false
	}

	lower := strings.ToLower(email)

	for _, suffix := range junkEmailSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}

	domain := lower[strings.Index(lower, "@")+1:]
	if personalEmailDomains[domain] {
		return false
	}
	for _, placeholder := range placeholderEmailDomains {
		if domain == placeholder {
			return false
		}
	}

	return true
}

// EmailMatchesDomain reports whether the email's domain matches the
// company domain, substring in either direction after lower-casing and
// stripping a leading www prefix.
func EmailMatchesDomain(email, companyDomain string) bool {
	if email == "" || !strings.Contains(email, "@") {
		return false
	}
	emailDomain := strings.ToLower(email[strings.Index(email, "@")+1:])
	clean := NormalizeDomain(companyDomain)
	if clean == "" {
		return false
	}
	return strings.Contains(emailDomain, clean) || strings.Contains(clean, emailDomain)
}

// NormalizeDomain lower-cases a domain and strips a leading www prefix.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "www.")
	return d
}
