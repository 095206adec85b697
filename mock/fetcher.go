package mock

import (
	"context"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of miner.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, render bool) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, render bool) (string, error) {
	return f.FetchFn(ctx, url, render)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
