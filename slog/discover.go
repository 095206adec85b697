package slog

import (
	"context"
	"log/slog"
	"time"

	miner "github.com/Raavan18/b2b-data-miner"
)

// Ensure LoggingDiscoveryService implements miner.DiscoveryService.
var _ miner.DiscoveryService = (*LoggingDiscoveryService)(nil)

// LoggingDiscoveryService wraps a DiscoveryService with debug logging.
type LoggingDiscoveryService struct {
	next   miner.DiscoveryService
	logger *slog.Logger
}

// NewLoggingDiscoveryService creates a new LoggingDiscoveryService.
func NewLoggingDiscoveryService(next miner.DiscoveryService, logger *slog.Logger) *LoggingDiscoveryService {
	return &LoggingDiscoveryService{next: next, logger: logger}
}

// Discover delegates to the wrapped service and logs the operation.
func (s *LoggingDiscoveryService) Discover(ctx context.Context, domain, companyName string) (discovery *miner.Discovery, err error) {
	defer func(begin time.Time) {
		candidates := 0
		if discovery != nil {
			candidates = len(discovery.Candidates)
		}
		s.logger.Info("discovery",
			"domain", domain,
			"candidates", candidates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, domain, companyName)
}
