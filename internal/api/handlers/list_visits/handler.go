package list_visits

import (
	"net/http"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
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

// Handle GET /api/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /visits - Failed to list visits: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /visits - Visits retrieved successfully: count=%d", len(visits.Visits))
	handlers.RespondJSON(w, http.StatusOK, visits)
}
