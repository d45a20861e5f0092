package models

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid visit status")
)

// Request модели

// FinalizeVisitRequest запрос на финализацию визита
// Описание обновляется только вместе с переходом статуса
type FinalizeVisitRequest struct {
	ID          int64   `json:"id"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"visitStatus"`
}

// Response модели

// VisitResponse представление визита
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

// VisitListResponse список визитов
type VisitListResponse struct {
	Visits []*VisitResponse `json:"visits"`
}

// FromDomainVisit конвертирует доменный визит в представление
func FromDomainVisit(visit *domain.Visit) *VisitResponse {
	return &VisitResponse{
		ID:               visit.ID,
		VetID:            visit.VetID,
		PetID:            visit.PetID,
		TreatmentRoomID:  visit.TreatmentRoomID,
		StartDateTime:    visit.StartDateTime.Format(domain.DateTimeFormat),
		EndDateTime:      visit.EndDateTime().Format(domain.DateTimeFormat),
		DurationMinutes:  visit.DurationMinutes,
		Price:            visit.Price,
		VisitType:        string(visit.VisitType),
		VisitDescription: visit.Description,
		VisitStatus:      string(visit.Status),
		OperationType:    string(visit.OperationType),
		CreatedAt:        visit.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:        visit.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainVisitList конвертирует список доменных визитов в представление
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	result := make([]*VisitResponse, len(visits))
	for i, visit := range visits {
		result[i] = FromDomainVisit(visit)
	}
	return &VisitListResponse{Visits: result}
}

// ToDomainVisitStatus конвертирует строковый статус в доменный с валидацией
func ToDomainVisitStatus(status string) (domain.VisitStatus, error) {
	s := domain.VisitStatus(status)
	switch s {
	case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
