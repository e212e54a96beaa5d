package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

// RegisterTokenCleanup prunes stale refresh-token revocations on an hourly
// interval. retention should match the refresh token expiration window.
func RegisterTokenCleanup(s *Scheduler, jwtService jwt.Service, retention time.Duration) {
	s.AddJob("revoked-token-cleanup", time.Hour, func(ctx context.Context) error {
		if pruned := jwtService.PruneRevokedTokens(retention); pruned > 0 {
			slog.Info("Pruned revoked tokens", "count", pruned)
		}
		return nil
	})
}
