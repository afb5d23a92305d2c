package strategy

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	dto "spin2win/internal/api/dto/strategy"
	"spin2win/internal/converter"
	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
	"spin2win/internal/middleware"
	"spin2win/internal/repository"
	"spin2win/internal/service"
	"spin2win/pkg/req"
	"spin2win/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SessionService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SessionService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Presets Список именованных конфигураций
func (h *Handler) Presets(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPresetsResponse(h.serv.Presets()))
}

// Create Новая сессия по пресету или явной конфигурации
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload := dto.CreateSessionRequest{}
	if r.ContentLength != 0 {
		var err error
		payload, err = req.Decode[dto.CreateSessionRequest](r.Body)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	data, err := h.serv.Create(r.Context(), converter.ToCreateSession(payload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCreateSessionResponse(*data))
}

// Get Текущее состояние сессии
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.Get(r.Context(), sessionID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(*snap))
}

// Spin Один номер рулетки
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Number == nil {
		resp.WriteError(w, http.StatusBadRequest, "number is required")
		return
	}

	result, err := h.serv.SubmitSpin(r.Context(), sessionID(r), *payload.Number)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Reset Сброс сессии к стартовому состоянию
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.Reset(r.Context(), sessionID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(*snap))
}

// Delete Завершает сессию
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), sessionID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sessionID ID из токена, иначе из пути
func sessionID(r *http.Request) string {
	if id, ok := middleware.SessionIDFromContext(r.Context()); ok {
		return id
	}
	return chi.URLParam(r, middleware.SessionIDParam)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidSpin),
		errors.Is(err, session.ErrInvalidConfig),
		errors.Is(err, partition.ErrMalformedPartition),
		errors.Is(err, service.ErrUnknownPreset),
		errors.Is(err, service.ErrInvalidRequest):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrSessionNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error("session request failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
