package create_visit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
)

// Request модель запроса на создание визита
// Кабинет и статус не принимаются от клиента: кабинет назначает аллокатор,
// статус всегда начинается со scheduled
type Request struct {
	VetID           int64
	PetID           int64
	StartDateTime   time.Time
	DurationMinutes int
	Price           decimal.Decimal
	VisitType       domain.VisitType
	OperationType   domain.OperationType
}

// Response модель ответа с созданным визитом
type Response struct {
	ID              int64
	VetID           int64
	PetID           int64
	TreatmentRoomID int64
	StartDateTime   time.Time
	EndDateTime     time.Time
	DurationMinutes int
	Price           decimal.Decimal
	VisitType       domain.VisitType
	OperationType   domain.OperationType
	Description     *string
	Status          domain.VisitStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainVisit конвертирует доменный визит в ответ use case
func fromDomainVisit(visit *domain.Visit) *Response {
	return &Response{
		ID:              visit.ID,
		VetID:           visit.VetID,
		PetID:           visit.PetID,
		TreatmentRoomID: visit.TreatmentRoomID,
		StartDateTime:   visit.StartDateTime,
		EndDateTime:     visit.EndDateTime(),
		DurationMinutes: visit.DurationMinutes,
		Price:           visit.Price,
		VisitType:       visit.VisitType,
		OperationType:   visit.OperationType,
		Description:     visit.Description,
		Status:          visit.Status,
		CreatedAt:       visit.CreatedAt,
		UpdatedAt:       visit.UpdatedAt,
	}
}
