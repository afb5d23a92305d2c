package session_repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spin2win/internal/engine/session"
	"spin2win/internal/model"
	"spin2win/internal/repository"
)

// entry Одна сессия и её собственный мьютекс
type entry struct {
	mtx    sync.Mutex
	meta   model.Session
	engine *session.Engine
}

// Реализация хранилища сессий в памяти
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewSessionRepository Конструктор пустого хранилища
func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create Регистрирует новую сессию. Повторный ID — ошибка
func (r *repo) Create(_ context.Context, meta model.Session, engine *session.Engine) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[meta.ID]; ok {
		return fmt.Errorf("session %s already exists", meta.ID)
	}
	r.sessions[meta.ID] = &entry{meta: meta, engine: engine}
	return nil
}

// Do Берёт запись под общим RLock, затем работает под мьютексом сессии.
// Частичные изменения сессии снаружи не видны.
func (r *repo) Do(ctx context.Context, id string, fn func(meta *model.Session, engine *session.Engine) error) error {
	r.mtx.RLock()
	e, ok := r.sessions[id]
	r.mtx.RUnlock()
	if !ok {
		return repository.ErrSessionNotFound
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	// Сессию могли удалить, пока ждали мьютекс
	r.mtx.RLock()
	current, ok := r.sessions[id]
	r.mtx.RUnlock()
	if !ok || current != e {
		return repository.ErrSessionNotFound
	}

	// Просроченная сессия недоступна, даже если чистка ещё не дошла
	if expired(e.meta, r.now()) {
		r.mtx.Lock()
		if r.sessions[id] == e {
			delete(r.sessions, id)
		}
		r.mtx.Unlock()
		return repository.ErrSessionNotFound
	}

	return fn(&e.meta, e.engine)
}

// Delete Удаляет сессию
func (r *repo) Delete(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// DeleteExpired Удаляет все просроченные сессии. ExpiresAt не меняется после Create,
// поэтому мьютексы самих сессий не нужны
func (r *repo) DeleteExpired(_ context.Context, now time.Time) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if expired(e.meta, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func expired(meta model.Session, now time.Time) bool {
	return !meta.ExpiresAt.IsZero() && !now.Before(meta.ExpiresAt)
}

// Count Количество живых сессий
func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}
