package session

import (
	"context"
	"time"

	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// RunPurger removes expired sessions every interval until ctx is cancelled.
// onPurge, if set, is called after each sweep with the number removed.
func RunPurger(ctx context.Context, store ports.ExpiringSessionStore, interval time.Duration, log *logger.Logger, onPurge func(int64)) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := store.PurgeExpired(ctx)
			if err != nil {
				log.Errorw("Failed to purge expired sessions", "error", err.Error())
				continue
			}
			if purged > 0 {
				log.Infow("Purged expired sessions", "count", purged)
			}
			if onPurge != nil {
				onPurge(purged)
			}
		}
	}
}
