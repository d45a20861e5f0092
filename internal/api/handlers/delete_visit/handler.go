package delete_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
	visitsService "github.com/m04kA/VetClinic-VisitService/internal/service/visits"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgVisitNotFound  = "визит не найден"
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

// Handle DELETE /api/visits/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visitID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /visits/{id} - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	if err := h.service.Delete(r.Context(), visitID); err != nil {
		switch {
		case errors.Is(err, visitsService.ErrVisitNotFound):
			h.logger.Warn("DELETE /visits/{id} - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgVisitNotFound)

		default:
			h.logger.Error("DELETE /visits/{id} - Failed to delete visit: visit_id=%d, error=%v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /visits/{id} - Visit deleted successfully: visit_id=%d", visitID)
	handlers.RespondNoContent(w)
}
