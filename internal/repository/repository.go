package repository

import (
	"context"
	"errors"
	"time"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrReportNotFound  = errors.New("simulation report not found")
	// ErrReportExists Отчёт с таким отпечатком уже сохранён параллельным запросом
	ErrReportExists    = errors.New("simulation report already exists")
)

// SessionRepository Хранилище живых сессий в памяти.
// Каждая сессия под своим мьютексом, общего изменяемого состояния между сессиями нет.
type SessionRepository interface {
	Create(ctx context.Context, meta model.Session, engine *session.Engine) error
	// Do Выполняет fn под мьютексом сессии
	Do(ctx context.Context, id string, fn func(meta *model.Session, engine *session.Engine) error) error
	Delete(ctx context.Context, id string) error
	// DeleteExpired Удаляет сессии с ExpiresAt не позже now, возвращает их число
	DeleteExpired(ctx context.Context, now time.Time) int
	Count() int
}

type SimulationRepository interface {
	CreateReport(ctx context.Context, report *model.Report) error
	CreateRounds(ctx context.Context, reportID string, rounds []model.Round) error
	GetReport(ctx context.Context, id string) (*model.Report, error)
	GetReportByFingerprint(ctx context.Context, fingerprint string) (*model.Report, error)
	GetRounds(ctx context.Context, reportID string) ([]model.Round, error)
}
