package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VisitStatus статус визита
type VisitStatus string

const (
	StatusScheduled VisitStatus = "scheduled"
	StatusCompleted VisitStatus = "completed"
	StatusCancelled VisitStatus = "cancelled"
)

// VisitType тип визита
type VisitType string

const (
	VisitTypeRoutine   VisitType = "routine"
	VisitTypeEmergency VisitType = "emergency"
	VisitTypeControl   VisitType = "control"
)

// OperationType тип процедуры
type OperationType string

const (
	OperationCheckup     OperationType = "checkup"
	OperationVaccination OperationType = "vaccination"
	OperationSurgery     OperationType = "surgery"
	OperationDental      OperationType = "dental"
	OperationGrooming    OperationType = "grooming"
)

// Visit визит питомца к ветеринару
// Кабинет назначается аллокатором при создании, не клиентом
type Visit struct {
	ID              int64
	VetID           int64
	PetID           int64
	TreatmentRoomID int64
	StartDateTime   time.Time
	DurationMinutes int
	Price           decimal.Decimal
	VisitType       VisitType
	OperationType   OperationType
	Description     *string
	Status          VisitStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndDateTime возвращает время окончания визита (start + duration)
// Вычисляется на лету, не хранится
func (v *Visit) EndDateTime() time.Time {
	return v.StartDateTime.Add(time.Duration(v.DurationMinutes) * time.Minute)
}

// IsTerminal возвращает true, если визит в терминальном статусе
func (v *Visit) IsTerminal() bool {
	return v.Status == StatusCompleted || v.Status == StatusCancelled
}

// CanBeFinalized возвращает true, если визит можно финализировать
func (v *Visit) CanBeFinalized() bool {
	return v.Status == StatusScheduled
}

// OccupiesInterval возвращает true, если визит занимает время ветеринара и кабинета
// Отменённые визиты освобождают свой интервал
func (v *Visit) OccupiesInterval() bool {
	return v.Status != StatusCancelled
}

// Overlaps проверяет пересечение с полуоткрытым интервалом [from, to)
// Интервалы, соприкасающиеся границами, не пересекаются
func (v *Visit) Overlaps(from, to time.Time) bool {
	return v.StartDateTime.Before(to) && from.Before(v.EndDateTime())
}

// VisitsFilter фильтр для выборки визитов
type VisitsFilter struct {
	VetIDs           []int64    // Фильтр по ветеринарам (пустой слайс - все)
	From             *time.Time // Начало интервала (опционально)
	To               *time.Time // Конец интервала (опционально)
	IncludeCancelled bool       // Включать ли отменённые визиты
}
