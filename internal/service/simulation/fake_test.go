package simulation

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"spin2win/internal/model"
	"spin2win/internal/repository"
)

// memRepo Хранилище отчётов в памяти для тестов сервиса
type memRepo struct {
	mu      sync.Mutex
	reports map[string]model.Report
	rounds  map[string][]model.Round
	inserts int
}

func newMemRepo() *memRepo {
	return &memRepo{
		reports: map[string]model.Report{},
		rounds:  map[string][]model.Round{},
	}
}

func (r *memRepo) CreateReport(_ context.Context, rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reports {
		if existing.Fingerprint == rep.Fingerprint {
			return repository.ErrReportExists
		}
	}
	rep.ID = uuid.NewString()
	rep.CreatedAt = time.Now()
	stored := *rep
	stored.Rounds = nil
	r.reports[rep.ID] = stored
	r.inserts++
	return nil
}

func (r *memRepo) CreateRounds(_ context.Context, id string, rounds []model.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds[id] = slices.Clone(rounds)
	return nil
}

func (r *memRepo) GetReport(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	return &rep, nil
}

func (r *memRepo) GetReportByFingerprint(_ context.Context, fp string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.reports {
		if rep.Fingerprint == fp {
			return &rep, nil
		}
	}
	return nil, repository.ErrReportNotFound
}

func (r *memRepo) GetRounds(_ context.Context, id string) ([]model.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.rounds[id]), nil
}

// passTx Менеджер транзакций без БД: просто вызывает fn
type passTx struct {
	calls int
}

func (m *passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func (m *passTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
