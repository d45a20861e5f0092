package create_visit

import (
	"errors"
	"net/http"

	"github.com/m04kA/VetClinic-VisitService/internal/api/handlers"
	"github.com/m04kA/VetClinic-VisitService/internal/api/middleware"
	createVisit "github.com/m04kA/VetClinic-VisitService/internal/usecase/create_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени начала, ожидается ISO-8601 со смещением"
	msgInvalidRequest     = "некорректные данные визита"
	msgVetNotFound        = "ветеринар не найден"
	msgPetNotFound        = "питомец не найден"
	msgVetUnavailable     = "ветеринар недоступен в выбранном интервале"
	msgNoRoomAvailable    = "нет свободного кабинета в выбранном интервале"
)

type Handler struct {
	useCase CreateVisitUseCase
	logger  Logger
}

func NewHandler(useCase CreateVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /visits - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createVisit.ErrInvalidInput):
			h.logger.Warn("POST /visits - Invalid request: vet_id=%d, pet_id=%d, error=%v",
				req.VetID, req.PetID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createVisit.ErrVetNotFound):
			h.logger.Warn("POST /visits - Vet not found: vet_id=%d", req.VetID)
			handlers.RespondNotFound(w, msgVetNotFound)

		case errors.Is(err, createVisit.ErrPetNotFound):
			h.logger.Warn("POST /visits - Pet not found: pet_id=%d", req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createVisit.ErrVetUnavailable):
			h.logger.Warn("POST /visits - Vet unavailable: vet_id=%d, start=%s", req.VetID, req.StartDateTime)
			handlers.RespondError(w, http.StatusConflict, msgVetUnavailable)

		case errors.Is(err, createVisit.ErrNoRoomAvailable):
			h.logger.Warn("POST /visits - No room available: vet_id=%d, start=%s", req.VetID, req.StartDateTime)
			handlers.RespondError(w, http.StatusConflict, msgNoRoomAvailable)

		default:
			h.logger.Error("POST /visits - Failed to create visit: vet_id=%d, pet_id=%d, error=%v",
				req.VetID, req.PetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	userID, _ := middleware.UserIDFromContext(r.Context())
	h.logger.Info("POST /visits - Visit created successfully: visit_id=%d, vet_id=%d, room_id=%d, user_id=%d",
		result.ID, result.VetID, result.TreatmentRoomID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
