package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	dto "spin2win/internal/api/dto/simulation"
	"spin2win/internal/engine/session"
	"spin2win/internal/model"
	"spin2win/internal/repository"
	"spin2win/internal/service"
)

type fakeServ struct {
	lastRun   model.SimulationRequest
	lastBatch model.BatchRequest
	err       error
}

func (f *fakeServ) Run(_ context.Context, req model.SimulationRequest) (*model.Report, error) {
	f.lastRun = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.Report{
		ID:         "0b6e4b5e-4a59-4b8e-9a39-1d0c0f6f0e11",
		Source:     req.Source,
		TotalSpins: len(req.Spins),
		HitRate:    decimal.RequireFromString("0.25"),
		Rounds:     []model.Round{{Index: 4, Spin: 4, Seed: "1111", Hit: true, Stake: 1, Net: 1, Balance: 501}},
	}, nil
}

func (f *fakeServ) Get(_ context.Context, id string, withRounds bool) (*model.Report, error) {
	if id != "known" {
		return nil, repository.ErrReportNotFound
	}
	rep := &model.Report{ID: id}
	if withRounds {
		rep.Rounds = []model.Round{{Index: 1}}
	}
	return rep, nil
}

func (f *fakeServ) RunBatch(_ context.Context, req model.BatchRequest) (*model.BatchReport, error) {
	f.lastBatch = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.BatchReport{Runs: req.Runs, SpinsPerRun: req.Count, MeanNetProfit: decimal.RequireFromString("-12.5")}, nil
}

func newRouter(f *fakeServ) http.Handler {
	h := NewHandler(HandlerDeps{Serv: f})
	r := chi.NewRouter()
	r.Post("/simulations", h.Run)
	r.Post("/simulations/batch", h.Batch)
	r.Get("/simulations/{id}", h.Get)
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRunSources(t *testing.T) {
	f := &fakeServ{}
	h := newRouter(f)

	rec := do(h, http.MethodPost, "/simulations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SpinSourceLive, f.lastRun.Source)

	rec = do(h, http.MethodPost, "/simulations", `{"spins": [1, 2, 3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SpinSourceList, f.lastRun.Source)
	assert.Equal(t, []int{1, 2, 3}, f.lastRun.Spins)

	rec = do(h, http.MethodPost, "/simulations", `{"preset": "p", "random": {"count": 50, "seed": 9}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SpinSourceRandom, f.lastRun.Source)
	assert.Equal(t, 50, f.lastRun.Count)
	assert.Equal(t, uint64(9), f.lastRun.Seed)
	assert.Equal(t, "p", f.lastRun.Preset)

	var out dto.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "random", out.Source)
	assert.True(t, decimal.RequireFromString("0.25").Equal(out.HitRate))
	require.Len(t, out.Rounds, 1)
	assert.Equal(t, "1111", out.Rounds[0].Seed)
	assert.Nil(t, out.CreatedAt)
}

func TestRunErrors(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"spin":    {session.ErrInvalidSpin, http.StatusBadRequest},
		"config":  {session.ErrInvalidConfig, http.StatusBadRequest},
		"preset":  {service.ErrUnknownPreset, http.StatusBadRequest},
		"request": {service.ErrInvalidRequest, http.StatusBadRequest},
		"other":   {assert.AnError, http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := newRouter(&fakeServ{err: tc.err})
			rec := do(h, http.MethodPost, "/simulations", `{"spins": [1]}`)
			assert.Equal(t, tc.code, rec.Code)
		})
	}

	h := newRouter(&fakeServ{})
	rec := do(h, http.MethodPost, "/simulations", `{"spins": "x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet(t *testing.T) {
	h := newRouter(&fakeServ{})

	rec := do(h, http.MethodGet, "/simulations/known?rounds=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Rounds, 1)

	rec = do(h, http.MethodGet, "/simulations/known", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out = dto.ReportResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Rounds)

	rec = do(h, http.MethodGet, "/simulations/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBatch(t *testing.T) {
	f := &fakeServ{}
	h := newRouter(f)

	rec := do(h, http.MethodPost, "/simulations/batch", `{"runs": 4, "count": 100, "seed": 3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.BatchRequest{Runs: 4, Count: 100, Seed: 3}, f.lastBatch)

	var out dto.BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 4, out.Runs)
	assert.True(t, decimal.RequireFromString("-12.5").Equal(out.MeanNetProfit))

	rec = do(h, http.MethodPost, "/simulations/batch", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorLogsCarryRequestID(t *testing.T) {
	cases := map[string]struct {
		err   error
		level zapcore.Level
		msg   string
		code  int
	}{
		"canceled": {fmt.Errorf("run: %w", context.Canceled), zapcore.DebugLevel, "simulation canceled", http.StatusOK},
		"internal": {assert.AnError, zapcore.ErrorLevel, "simulation request failed", http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			h := NewHandler(HandlerDeps{Serv: &fakeServ{err: tc.err}, Log: zap.New(core)})
			r := chi.NewRouter()
			r.Use(chimw.RequestID)
			r.Post("/simulations", h.Run)

			rec := do(r, http.MethodPost, "/simulations", `{"spins": [1]}`)
			assert.Equal(t, tc.code, rec.Code)

			entries := logs.FilterMessage(tc.msg).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].Level)
			reqID, ok := entries[0].ContextMap()["request_id"].(string)
			require.True(t, ok)
			assert.NotEmpty(t, reqID)
		})
	}
}
