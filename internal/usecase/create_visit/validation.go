package create_visit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// validateRequest валидирует входные данные запроса
// Первая проверка спецификации бронирования: длительность строго положительна
func validateRequest(req *Request) error {
	if req.VetID <= 0 {
		return fmt.Errorf("%w: vetId must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petId must be positive", ErrInvalidInput)
	}

	if req.StartDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinVisitDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes > domain.MaxVisitDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxVisitDurationMinutes)
	}

	if req.Price.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if !domain.IsKnownVisitType(req.VisitType) {
		return fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}

	if !domain.IsKnownOperationType(req.OperationType) {
		return fmt.Errorf("%w: unknown operation type %q", ErrInvalidInput, req.OperationType)
	}

	return nil
}

// workWindowCovers проверяет, что интервал [start, end) целиком лежит в рабочих
// часах ветеринара на каждый день, который он затрагивает
// Рабочее окно - время суток, применяется к каждому календарному дню
func workWindowCovers(vet *clinicservice.Vet, start, end time.Time) (bool, error) {
	day := startOfDay(start)
	for day.Before(end) {
		nextDay := day.AddDate(0, 0, 1)

		// Часть интервала, приходящаяся на этот день
		partStart := start
		if day.After(partStart) {
			partStart = day
		}
		partEnd := end
		if nextDay.Before(partEnd) {
			partEnd = nextDay
		}

		if partStart.Before(partEnd) {
			windowStart, err := vet.WorkStartTime.OnDate(day)
			if err != nil {
				return false, err
			}
			windowEnd, err := vet.WorkEndTime.OnDate(day)
			if err != nil {
				return false, err
			}

			if partStart.Before(windowStart) || partEnd.After(windowEnd) {
				return false, nil
			}
		}

		day = nextDay
	}

	return true, nil
}

// hasVetConflict проверяет пересечение интервала с визитами ветеринара
// Полуоткрытый тест: соприкасающиеся границами интервалы не конфликтуют
func hasVetConflict(vetID int64, start, end time.Time, visits []*domain.Visit) bool {
	for _, visit := range visits {
		if visit.VetID != vetID {
			continue
		}
		if !visit.OccupiesInterval() {
			continue
		}
		if visit.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// startOfDay обнуляет время, сохраняя часовой пояс
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// visitDuration конвертирует длительность визита в time.Duration
func visitDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
