package service

import (
	"context"
	"errors"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

var (
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrInvalidRequest = errors.New("invalid request")
)

type SessionService interface {
	Create(ctx context.Context, req model.CreateSession) (*model.SessionData, error)
	SubmitSpin(ctx context.Context, id string, number int) (*session.Result, error)
	Reset(ctx context.Context, id string) (*session.Snapshot, error)
	Get(ctx context.Context, id string) (*session.Snapshot, error)
	Delete(ctx context.Context, id string) error
	// EvictExpired Удаляет сессии, чей токен уже истёк
	EvictExpired(ctx context.Context) int
	Presets() map[string]session.Config
}

type SimulationService interface {
	Run(ctx context.Context, req model.SimulationRequest) (*model.Report, error)
	Get(ctx context.Context, id string, withRounds bool) (*model.Report, error)
	RunBatch(ctx context.Context, req model.BatchRequest) (*model.BatchReport, error)
}
