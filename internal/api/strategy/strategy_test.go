package strategy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dto "spin2win/internal/api/dto/strategy"
	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
	"spin2win/internal/engine/staking"
	"spin2win/internal/middleware"
	"spin2win/internal/repository/session_repo"
	strategyServ "spin2win/internal/service/strategy"
)

var secret = []byte("handler-secret")

type presets map[string]session.Config

func (p presets) Preset(name string) (session.Config, bool) {
	cfg, ok := p[name]
	return cfg, ok
}

func (p presets) Presets() map[string]session.Config { return p }

func (p presets) DefaultPreset() string { return "nine" }

type tokenCfg struct{}

func (tokenCfg) SecretKey() []byte { return secret }

func (tokenCfg) TTL() time.Duration { return time.Hour }

func newRouter() http.Handler {
	cfg := session.Config{
		Scheme:           partition.NineGroup,
		WindowSize:       4,
		Staking:          staking.Fibonacci,
		StakeMode:        staking.Pooled,
		StartingBalance:  500,
		PayoutMultiplier: 2,
	}.WithDefaults()

	serv := strategyServ.NewStrategyService(session_repo.NewSessionRepository(), presets{"nine": cfg}, tokenCfg{}, zap.NewNop())
	h := NewHandler(HandlerDeps{Serv: serv})

	r := chi.NewRouter()
	r.Get("/presets", h.Presets)
	r.Post("/sessions", h.Create)
	r.Route("/sessions/{id}", func(rr chi.Router) {
		rr.Use(middleware.SessionAuth(secret))
		rr.Get("/", h.Get)
		rr.Delete("/", h.Delete)
		rr.Post("/spins", h.Spin)
		rr.Post("/reset", h.Reset)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, tok, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, h http.Handler) dto.CreateSessionResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions", "", `{"preset": "nine"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out dto.CreateSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.SessionID)
	require.NotEmpty(t, out.Token)
	return out
}

func TestSessionFlow(t *testing.T) {
	h := newRouter()
	s := createSession(t, h)
	base := "/sessions/" + s.SessionID

	assert.Equal(t, "collecting", s.Snapshot.State)
	assert.Equal(t, []int{}, s.Snapshot.Window)

	for _, n := range []int{32, 15, 19} {
		rec := do(t, h, http.MethodPost, base+"/spins", s.Token, `{"number": `+itoa(n)+`}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodPost, base+"/spins", s.Token, `{"number": 4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var spin dto.SpinResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spin))
	assert.Equal(t, "active", spin.State)
	require.NotNil(t, spin.Seed)
	assert.Equal(t, "1111", spin.Seed.Text)
	assert.Equal(t, []int{4, 15, 19, 32}, spin.Prediction)
	assert.Nil(t, spin.Hit)

	rec = do(t, h, http.MethodPost, base+"/spins", s.Token, `{"number": 4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	spin = dto.SpinResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spin))
	require.NotNil(t, spin.Hit)
	assert.True(t, *spin.Hit)
	assert.Equal(t, 501, spin.Balance)
	assert.Equal(t, "1111", spin.BetSeed)

	rec = do(t, h, http.MethodGet, base, s.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snap dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 501, snap.Ledger.Balance)

	rec = do(t, h, http.MethodPost, base+"/reset", s.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	snap = dto.SnapshotResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 500, snap.Ledger.Balance)
	assert.Nil(t, snap.Seed)

	rec = do(t, h, http.MethodDelete, base, s.Token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, base, s.Token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSpinErrors(t *testing.T) {
	h := newRouter()
	s := createSession(t, h)
	base := "/sessions/" + s.SessionID

	rec := do(t, h, http.MethodPost, base+"/spins", s.Token, `{"number": 37}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid spin value")

	rec = do(t, h, http.MethodPost, base+"/spins", s.Token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/spins", "", `{"number": 3}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := createSession(t, h)
	rec = do(t, h, http.MethodPost, base+"/spins", other.Token, `{"number": 3}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateErrors(t *testing.T) {
	h := newRouter()

	rec := do(t, h, http.MethodPost, "/sessions", "", `{"preset": "missing"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/sessions", "", `{"config": {"window_size": 99}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/sessions", "", `{"config": {"partition_scheme": "seven_group"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/sessions", "", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPresets(t *testing.T) {
	h := newRouter()

	rec := do(t, h, http.MethodGet, "/presets", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out dto.PresetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Presets, "nine")
	assert.Equal(t, partition.NineGroup, out.Presets["nine"].Scheme)
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
