package goquery

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	miner "github.com/Raavan18/b2b-data-miner"
)

var (
	_ miner.ContactExtractor = (*Extractor)(nil)
	_ miner.CompanyNamer     = (*Extractor)(nil)
)

// Extractor pulls contact details and company names out of fetched pages.
// It never guesses: emails and phones come from literal page content and
// roles only from explicit mentions.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContacts extracts contact fragments from a single page.
//
// Emails are matched over the raw HTML so addresses inside attributes and
// scripts are found too, plus any mailto: links. When companyDomain is
// given, only emails whose domain matches it survive. Phones are matched
// over the visible text plus tel: links, keeping script noise out. A role
// mentioned anywhere on the page applies to every fragment the page
// produces.
//
// Each email becomes one fragment with a phone paired by position;
// leftover phones become phone-only fragments. A role alone is never a
// contact.
func (e *Extractor) ExtractContacts(html, sourceURL, companyDomain string) []miner.RawContact {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	text := pageText(doc)

	emails := extractEmails(html, doc, companyDomain)
	phones := extractPhones(text, doc)
	role := miner.RoleFromText(text)

	n := len(emails)
	if len(phones) > n {
		n = len(phones)
	}

	var contacts []miner.RawContact
	for i := 0; i < n; i++ {
		c := miner.RawContact{
			Role:         role,
			EvidenceURLs: []string{sourceURL},
		}
		if i < len(emails) {
			c.Email = emails[i]
		}
		if i < len(phones) {
			c.Phone = phones[i]
		}
		contacts = append(contacts, c)
	}
	return contacts
}

// titleSuffixPattern strips trailing "- Home", "| Welcome" style suffixes
// from page titles.
var titleSuffixPattern = regexp.MustCompile(`(?i)\s*[-|]\s*(home|welcome|official).*$`)

// ExtractCompanyName extracts the company name from the page title,
// with a short h1 heading as fallback.
func (e *Extractor) ExtractCompanyName(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	title = strings.TrimSpace(titleSuffixPattern.ReplaceAllString(title, ""))
	if title != "" {
		return title
	}

	h1 := strings.TrimSpace(doc.Find("h1").First().Text())
	if h1 != "" && utf8.RuneCountInString(h1) < 100 {
		return h1
	}

	return ""
}

func extractEmails(html string, doc *goquery.Document, companyDomain string) []string {
	seen := make(map[string]struct{})
	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if !miner.IsBusinessEmail(email) {
			return
		}
		if companyDomain != "" && !miner.EmailMatchesDomain(email, companyDomain) {
			return
		}
		seen[email] = struct{}{}
	}

	for _, match := range miner.EmailPattern.FindAllString(html, -1) {
		add(match)
	}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if idx := strings.Index(addr, "?"); idx != -1 {
			addr = addr[:idx]
		}
		if unescaped, err := url.QueryUnescape(addr); err == nil {
			addr = unescaped
		}
		add(addr)
	})

	return sortedKeys(seen)
}

func extractPhones(text string, doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	add := func(raw string) {
		raw = strings.TrimSpace(raw)
		if !miner.IsValidPhone(raw) {
			return
		}
		seen[miner.NormalizePhone(raw)] = struct{}{}
	}

	for _, match := range miner.PhonePattern.FindAllString(text, -1) {
		add(match)
	}

	doc.Find(`a[href^="tel:"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		add(strings.TrimPrefix(href, "tel:"))
	})

	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
