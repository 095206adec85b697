package mock

import (
	"context"

	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of miner.ReportService.
type ReportService struct {
	CreateRunFn   func(ctx context.Context, run *miner.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*miner.Run, error)
	FindRunsFn    func(ctx context.Context, filter miner.RunFilter) ([]*miner.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateRun(ctx context.Context, run *miner.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *ReportService) FindRunByID(ctx context.Context, id string) (*miner.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *ReportService) FindRuns(ctx context.Context, filter miner.RunFilter) ([]*miner.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *ReportService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
