package create_visit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	createVisit "github.com/m04kA/VetClinic-VisitService/internal/usecase/create_visit"
)

// CreateVisitRequest HTTP request model
// Кабинет и статус не принимаются: кабинет назначается сервисом,
// статус нового визита всегда scheduled
type CreateVisitRequest struct {
	VetID           int64           `json:"vetId"`
	PetID           int64           `json:"petId"`
	StartDateTime   string          `json:"startDateTime"` // "2026-04-01T10:00:00+02:00"
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	VisitType       string          `json:"visitType"`
	OperationType   string          `json:"operationType"`
}

// VisitResponse HTTP response model
// Представление совпадает с ответами чтения и финализации;
// описание у нового визита всегда пустое
type VisitResponse struct {
	ID               int64           `json:"id"`
	VetID            int64           `json:"vetId"`
	PetID            int64           `json:"petId"`
	TreatmentRoomID  int64           `json:"treatmentRoomId"`
	StartDateTime    string          `json:"startDateTime"`
	EndDateTime      string          `json:"endDateTime"`
	DurationMinutes  int             `json:"durationMinutes"`
	Price            decimal.Decimal `json:"price"`
	VisitType        string          `json:"visitType"`
	VisitDescription *string         `json:"visitDescription,omitempty"`
	VisitStatus      string          `json:"visitStatus"`
	OperationType    string          `json:"operationType"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateVisitRequest) ToUseCaseRequest() (*createVisit.Request, error) {
	startDateTime, err := time.Parse(domain.DateTimeFormat, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	return &createVisit.Request{
		VetID:           r.VetID,
		PetID:           r.PetID,
		StartDateTime:   startDateTime,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		VisitType:       domain.VisitType(r.VisitType),
		OperationType:   domain.OperationType(r.OperationType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVisit.Response) *VisitResponse {
	return &VisitResponse{
		ID:               resp.ID,
		VetID:            resp.VetID,
		PetID:            resp.PetID,
		TreatmentRoomID:  resp.TreatmentRoomID,
		StartDateTime:    resp.StartDateTime.Format(domain.DateTimeFormat),
		EndDateTime:      resp.EndDateTime.Format(domain.DateTimeFormat),
		DurationMinutes:  resp.DurationMinutes,
		Price:            resp.Price,
		VisitType:        string(resp.VisitType),
		VisitDescription: resp.Description,
		VisitStatus:      string(resp.Status),
		OperationType:    string(resp.OperationType),
		CreatedAt:        resp.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:        resp.UpdatedAt.Format(domain.DateTimeFormat),
	}
}
