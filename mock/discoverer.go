package mock

import (
	"context"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService is a mock implementation of miner.DiscoveryService.
type DiscoveryService struct {
	DiscoverFn func(ctx context.Context, domain, companyName string) (*miner.Discovery, error)
}

func (s *DiscoveryService) Discover(ctx context.Context, domain, companyName string) (*miner.Discovery, error) {
	return s.DiscoverFn(ctx, domain, companyName)
}
