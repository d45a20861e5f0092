package domain

import "time"

// AvailableSlot свободный интервал в расписании ветеринара
// Результат запроса доступности, не хранится в БД
type AvailableSlot struct {
	VetID int64
	Start time.Time
	End   time.Time
}
