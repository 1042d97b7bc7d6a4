package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// StartBlacklistCleanupScheduler purges revoked tokens that expired more
// than retention ago, once at start and then every interval, until ctx ends.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, log *zap.Logger, retention, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			RunBlacklistCleanup(ctx, db, log, retention)
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, log *zap.Logger, retention time.Duration) {
	n, err := helperAuth.PurgeExpired(ctx, db, time.Now().Add(-retention))
	if err != nil {
		log.Warn("token_blacklist cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("token_blacklist cleanup", zap.Int64("deleted", n))
	}
}
