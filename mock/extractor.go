package mock

import miner "github.com/Raavan18/b2b-data-miner"

var _ miner.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of miner.ContactExtractor.
type ContactExtractor struct {
	ExtractContactsFn func(html, sourceURL, companyDomain string) []miner.RawContact
}

func (e *ContactExtractor) ExtractContacts(html, sourceURL, companyDomain string) []miner.RawContact {
	return e.ExtractContactsFn(html, sourceURL, companyDomain)
}

var _ miner.CompanyNamer = (*CompanyNamer)(nil)

// CompanyNamer is a mock implementation of miner.CompanyNamer.
type CompanyNamer struct {
	ExtractCompanyNameFn func(html string) string
}

func (n *CompanyNamer) ExtractCompanyName(html string) string {
	return n.ExtractCompanyNameFn(html)
}

var _ miner.PersonExtractor = (*PersonExtractor)(nil)

// PersonExtractor is a mock implementation of miner.PersonExtractor.
type PersonExtractor struct {
	ExtractPeopleFn func(html, sourceURL string) []miner.Person
}

func (e *PersonExtractor) ExtractPeople(html, sourceURL string) []miner.Person {
	return e.ExtractPeopleFn(html, sourceURL)
}
