package get_available_visits

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	getAvailableVisits "github.com/m04kA/VetClinic-VisitService/internal/usecase/get_available_visits"
)

// AvailableVisitsResponse HTTP response model
type AvailableVisitsResponse struct {
	StartDateTime string          `json:"startDateTime"`
	EndDateTime   string          `json:"endDateTime"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный интервал и ветеринары, доступные на весь интервал
type AvailableSlot struct {
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	VetIDs        []int64 `json:"vetIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableVisits.Response) *AvailableVisitsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartDateTime: slot.StartDateTime.Format(domain.DateTimeFormat),
			EndDateTime:   slot.EndDateTime.Format(domain.DateTimeFormat),
			VetIDs:        slot.VetIDs,
		}
	}

	return &AvailableVisitsResponse{
		StartDateTime: resp.StartDateTime.Format(domain.DateTimeFormat),
		EndDateTime:   resp.EndDateTime.Format(domain.DateTimeFormat),
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr, vetIDsStr string) (*getAvailableVisits.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid startDateTime: %w", err)
	}

	end, err := time.Parse(domain.DateTimeFormat, endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid endDateTime: %w", err)
	}

	vetIDs, err := parseVetIDs(vetIDsStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableVisits.Request{
		StartDateTime: start,
		EndDateTime:   end,
		VetIDs:        vetIDs,
	}, nil
}

// parseVetIDs разбирает vetIds вида "1,2,3"; пустая строка - без фильтра
// Параметр - множество: повторяющиеся ID схлопываются
func parseVetIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	seen := make(map[int64]struct{}, len(parts))
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vetIds: %w", err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}
