package strategy

import (
	"context"

	"go.uber.org/zap"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

// Reset Возвращает сессию к стартовым значениям её конфигурации
func (s *serv) Reset(ctx context.Context, id string) (*session.Snapshot, error) {
	var snap session.Snapshot

	err := s.repo.Do(ctx, id, func(_ *model.Session, engine *session.Engine) error {
		engine.Reset()
		snap = engine.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("session reset", zap.String("session_id", id))

	return &snap, nil
}

// Get Текущее состояние сессии
func (s *serv) Get(ctx context.Context, id string) (*session.Snapshot, error) {
	var snap session.Snapshot

	err := s.repo.Do(ctx, id, func(_ *model.Session, engine *session.Engine) error {
		snap = engine.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// Delete Удаляет сессию
func (s *serv) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("session deleted", zap.String("session_id", id))
	return nil
}
