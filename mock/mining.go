package mock

import (
	"context"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.MiningService = (*MiningService)(nil)

// MiningService is a mock implementation of miner.MiningService.
type MiningService struct {
	MineFn func(ctx context.Context, domain, companyName string) (*miner.Report, error)
}

func (s *MiningService) Mine(ctx context.Context, domain, companyName string) (*miner.Report, error) {
	return s.MineFn(ctx, domain, companyName)
}
