package get_available_visits

import (
	"sort"
	"time"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// interval полуоткрытый интервал [start, end)
type interval struct {
	start time.Time
	end   time.Time
}

// openIntervalsForVet вычисляет свободные интервалы ветеринара внутри [from, to)
// Диапазон разбивается по календарным дням, потому что рабочие часы - это
// время суток, а не непрерывный диапазон временных меток. На каждый день
// диапазон пересекается с рабочим окном, затем из него вычитаются визиты.
//
// visits должны быть отсортированы по времени начала и принадлежать этому ветеринару.
func openIntervalsForVet(vet *clinicservice.Vet, from, to time.Time, visits []*domain.Visit) ([]interval, error) {
	open := make([]interval, 0)

	day := startOfDay(from)
	for day.Before(to) {
		windowStart, err := vet.WorkStartTime.OnDate(day)
		if err != nil {
			return nil, err
		}
		windowEnd, err := vet.WorkEndTime.OnDate(day)
		if err != nil {
			return nil, err
		}

		// Пересекаем рабочее окно дня с запрошенным диапазоном
		if windowStart.Before(from) {
			windowStart = from
		}
		if windowEnd.After(to) {
			windowEnd = to
		}

		if windowStart.Before(windowEnd) {
			open = append(open, subtractVisits(windowStart, windowEnd, visits)...)
		}

		day = day.AddDate(0, 0, 1)
	}

	return open, nil
}

// subtractVisits вычитает занятые интервалы из окна [windowStart, windowEnd)
// одним проходом слева направо. Соседние визиты сливаются через курсор,
// вырожденные (нулевой длины) промежутки отбрасываются.
func subtractVisits(windowStart, windowEnd time.Time, visits []*domain.Visit) []interval {
	gaps := make([]interval, 0)
	cursor := windowStart

	for _, visit := range visits {
		if !visit.OccupiesInterval() {
			continue
		}

		visitStart := visit.StartDateTime
		visitEnd := visit.EndDateTime()

		// Визит целиком левее курсора - не влияет
		if !visitEnd.After(cursor) {
			continue
		}
		// Визит целиком правее окна - дальше все тоже правее (сортировка по началу)
		if !visitStart.Before(windowEnd) {
			break
		}

		if visitStart.After(cursor) {
			gaps = append(gaps, interval{start: cursor, end: visitStart})
		}

		if visitEnd.After(cursor) {
			cursor = visitEnd
		}
	}

	if cursor.Before(windowEnd) {
		gaps = append(gaps, interval{start: cursor, end: windowEnd})
	}

	return gaps
}

// startOfDay обнуляет время, сохраняя часовой пояс
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mergeSlots объединяет слоты разных ветеринаров с одинаковыми границами
// Результат отсортирован по началу, затем по концу; ветеринары внутри слота - по ID
func mergeSlots(slots []domain.AvailableSlot) []Slot {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Start.Equal(slots[j].Start) {
			return slots[i].Start.Before(slots[j].Start)
		}
		if !slots[i].End.Equal(slots[j].End) {
			return slots[i].End.Before(slots[j].End)
		}
		return slots[i].VetID < slots[j].VetID
	})

	merged := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		n := len(merged)
		if n > 0 && merged[n-1].StartDateTime.Equal(slot.Start) && merged[n-1].EndDateTime.Equal(slot.End) {
			merged[n-1].VetIDs = append(merged[n-1].VetIDs, slot.VetID)
			continue
		}
		merged = append(merged, Slot{
			StartDateTime: slot.Start,
			EndDateTime:   slot.End,
			VetIDs:        []int64{slot.VetID},
		})
	}

	return merged
}

// groupVisitsByVet раскладывает визиты по ветеринарам, сохраняя сортировку по началу
func groupVisitsByVet(visits []*domain.Visit) map[int64][]*domain.Visit {
	grouped := make(map[int64][]*domain.Visit)
	for _, visit := range visits {
		grouped[visit.VetID] = append(grouped[visit.VetID], visit)
	}
	return grouped
}
