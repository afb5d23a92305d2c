package strategy

import (
	"context"

	"go.uber.org/zap"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

// SubmitSpin Один спин сессии целиком под её мьютексом
func (s *serv) SubmitSpin(ctx context.Context, id string, number int) (*session.Result, error) {
	var res session.Result

	err := s.repo.Do(ctx, id, func(_ *model.Session, engine *session.Engine) error {
		r, err := engine.Submit(number)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Reset {
		s.log.Debug("session reset after hit",
			zap.String("session_id", id),
			zap.Int("spin", number),
			zap.Int("balance", res.Balance),
		)
	}

	return &res, nil
}
