package simulation

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	dto "spin2win/internal/api/dto/simulation"
	"spin2win/internal/converter"
	"spin2win/internal/engine/partition"
	"spin2win/internal/engine/session"
	"spin2win/internal/repository"
	"spin2win/internal/service"
	"spin2win/pkg/req"
	"spin2win/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SimulationService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SimulationService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Run Прогон стратегии по списку спинов, отчёт сохраняется
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload := dto.SimulationRequest{}
	if r.ContentLength != 0 {
		var err error
		payload, err = req.Decode[dto.SimulationRequest](r.Body)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	report, err := h.serv.Run(r.Context(), converter.ToSimulationRequest(payload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportResponse(*report))
}

// Get Сохранённый отчёт; ?rounds=true добавляет раунды
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	withRounds := r.URL.Query().Get("rounds") == "true"

	report, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"), withRounds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReportResponse(*report))
}

// Batch Пакет случайных прогонов, без сохранения
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BatchRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.serv.RunBatch(r.Context(), converter.ToBatchRequest(payload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBatchResponse(*out))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidSpin),
		errors.Is(err, session.ErrInvalidConfig),
		errors.Is(err, partition.ErrMalformedPartition),
		errors.Is(err, service.ErrUnknownPreset),
		errors.Is(err, service.ErrInvalidRequest):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrReportNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled):
		// Клиент ушёл
		h.log.Debug("simulation canceled", zap.String("request_id", chimw.GetReqID(r.Context())))
	default:
		h.log.Error("simulation request failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
