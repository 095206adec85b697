package mock

import (
	"context"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of miner.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
