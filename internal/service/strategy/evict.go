package strategy

import (
	"context"

	"go.uber.org/zap"
)

// EvictExpired Чистка сессий с истёкшим токеном: обратиться к ним уже нельзя
func (s *serv) EvictExpired(ctx context.Context) int {
	removed := s.repo.DeleteExpired(ctx, s.now())
	if removed > 0 {
		s.log.Info("expired sessions evicted",
			zap.Int("removed", removed),
			zap.Int("alive", s.repo.Count()),
		)
	}
	return removed
}
