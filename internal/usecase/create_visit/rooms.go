package create_visit

import (
	"sort"
	"time"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// allocateRoom выбирает первый по возрастанию ID кабинет без визитов,
// пересекающихся с интервалом [start, end)
// Возвращает 0 и false, если все кабинеты заняты
//
// visits - все визиты, пересекающиеся с интервалом (по всем ветеринарам):
// занятость кабинета не зависит от того, чей визит его занимает.
func allocateRoom(rooms []*clinicservice.TreatmentRoom, start, end time.Time, visits []*domain.Visit) (int64, bool) {
	occupied := make(map[int64]bool)
	for _, visit := range visits {
		if !visit.OccupiesInterval() {
			continue
		}
		if visit.Overlaps(start, end) {
			occupied[visit.TreatmentRoomID] = true
		}
	}

	// Стабильный порядок выбора: по возрастанию ID
	sorted := make([]*clinicservice.TreatmentRoom, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, room := range sorted {
		if !occupied[room.ID] {
			return room.ID, true
		}
	}

	return 0, false
}
