package service

import (
	"context"
	"time"

	"github.com/Gthulhu/procfeed/pkg/logger"
)

// RunPeriodicRefresh refreshes every interval until ctx is done. A failed
// refresh is logged and retried on the next tick.
func (svc *Service) RunPeriodicRefresh(ctx context.Context, interval time.Duration) {
	logger.Logger(ctx).Info().Msgf("periodic refresh starting, interval %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := svc.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Logger(ctx).Warn().Err(err).Msg("periodic refresh failed")
			}
		case <-ctx.Done():
			logger.Logger(ctx).Info().Msg("periodic refresh stopped")
			return
		}
	}
}
