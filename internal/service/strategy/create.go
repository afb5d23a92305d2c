package strategy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
	"spin2win/internal/service"
	"spin2win/pkg/token"
)

// Create Настраивает движок, регистрирует сессию и выдаёт токен на неё
func (s *serv) Create(ctx context.Context, req model.CreateSession) (*model.SessionData, error) {
	cfg, preset, err := service.ResolveConfig(s.presets, req.Preset, req.Config)
	if err != nil {
		return nil, err
	}

	engine, err := session.New(cfg)
	if err != nil {
		return nil, err
	}

	now := s.now()
	meta := model.Session{
		ID:        uuid.NewString(),
		Preset:    preset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenCfg.TTL()),
	}

	tok, err := token.GenerateSessionToken(meta.ID, s.tokenCfg.SecretKey(), s.tokenCfg.TTL())
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.repo.Create(ctx, meta, engine); err != nil {
		return nil, err
	}

	s.log.Info("session created",
		zap.String("session_id", meta.ID),
		zap.String("preset", preset),
		zap.String("scheme", string(cfg.Scheme)),
		zap.String("staking", string(cfg.Staking)),
	)

	return &model.SessionData{
		Session:  meta,
		Token:    tok,
		Snapshot: engine.Snapshot(),
	}, nil
}
