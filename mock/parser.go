package mock

import miner "github.com/Raavan18/b2b-data-miner"

var _ miner.SearchResultParser = (*SearchResultParser)(nil)

// SearchResultParser is a mock implementation of miner.SearchResultParser.
type SearchResultParser struct {
	EngineFn       func() miner.Engine
	SearchURLFn    func(query string) string
	ParseResultsFn func(html string) []miner.Candidate
}

func (p *SearchResultParser) Engine() miner.Engine {
	return p.EngineFn()
}

func (p *SearchResultParser) SearchURL(query string) string {
	return p.SearchURLFn(query)
}

func (p *SearchResultParser) ParseResults(html string) []miner.Candidate {
	return p.ParseResultsFn(html)
}
