package get_available_visits

import (
	"errors"
	"net/http"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
	getAvailableVisits "github.com/m04kA/VetClinic-VisitService/internal/usecase/get_available_visits"
)

const (
	msgMissingStartDateTime = "начало интервала обязательно"
	msgMissingEndDateTime   = "конец интервала обязателен"
	msgInvalidQueryParams   = "некорректные параметры запроса"
	msgInvalidInterval      = "некорректный интервал поиска"
	msgVetNotFound          = "ветеринар не найден"
)

type Handler struct {
	useCase GetAvailableVisitsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableVisitsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/visits/available
// Query params: startDateTime (required), endDateTime (required), vetIds (optional, "1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr := query.Get("startDateTime")
	if startStr == "" {
		h.logger.Warn("GET /visits/available - Missing startDateTime")
		handlers.RespondBadRequest(w, msgMissingStartDateTime)
		return
	}

	endStr := query.Get("endDateTime")
	if endStr == "" {
		h.logger.Warn("GET /visits/available - Missing endDateTime")
		handlers.RespondBadRequest(w, msgMissingEndDateTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr, query.Get("vetIds"))
	if err != nil {
		h.logger.Warn("GET /visits/available - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableVisits.ErrInvalidInput):
			h.logger.Warn("GET /visits/available - Invalid interval: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, getAvailableVisits.ErrVetNotFound):
			h.logger.Warn("GET /visits/available - Vet not found: vet_ids=%v", useCaseReq.VetIDs)
			handlers.RespondNotFound(w, msgVetNotFound)

		default:
			h.logger.Error("GET /visits/available - Failed to get available visits: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /visits/available - Available visits retrieved successfully: start=%s, end=%s, slots_count=%d",
		startStr, endStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
