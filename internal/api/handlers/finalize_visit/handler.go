package finalize_visit

import (
	"errors"
	"net/http"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
	visitsService "github.com/m04kA/VetClinic-VisitService/internal/service/visits"
	"github.com/m04kA/VetClinic-VisitService/internal/service/visits/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные финализации"
	msgVisitNotFound      = "визит не найден"
	msgAlreadyFinalized   = "визит уже финализирован"
)

type Handler struct {
	service VisitsService
	logger  Logger
}

func NewHandler(service VisitsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FinalizeVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	visit, err := h.service.Finalize(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, visitsService.ErrInvalidInput):
			h.logger.Warn("PATCH /visits - Invalid request: visit_id=%d, status=%s, error=%v",
				req.ID, req.Status, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, visitsService.ErrVisitNotFound):
			h.logger.Warn("PATCH /visits - Visit not found: visit_id=%d", req.ID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		case errors.Is(err, visitsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /visits - Visit already finalized: visit_id=%d", req.ID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalized)

		default:
			h.logger.Error("PATCH /visits - Failed to finalize visit: visit_id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /visits - Visit finalized successfully: visit_id=%d, status=%s", req.ID, visit.VisitStatus)
	handlers.RespondJSON(w, http.StatusOK, visit)
}
