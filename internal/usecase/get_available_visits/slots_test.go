package get_available_visits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
	"github.com/m04kA/VetClinic-VisitService/pkg/types"
)

func testVet(id int64, workStart, workEnd string) *clinicservice.Vet {
	return &clinicservice.Vet{
		ID:            id,
		Name:          "Анна",
		Surname:       "Ветрова",
		WorkStartTime: types.TimeString(workStart),
		WorkEndTime:   types.TimeString(workEnd),
	}
}

func scheduledVisit(vetID int64, start time.Time, durationMinutes int) *domain.Visit {
	return &domain.Visit{
		VetID:           vetID,
		StartDateTime:   start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusScheduled,
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

var testDay = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func TestOpenIntervalsForVet_NoVisits(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")

	// Запрос уже окна: [10:00, 12:00)
	open, err := openIntervalsForVet(vet, at(testDay, 10, 0), at(testDay, 12, 0), nil)
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, at(testDay, 10, 0), open[0].start)
	assert.Equal(t, at(testDay, 12, 0), open[0].end)
}

func TestOpenIntervalsForVet_VisitSplitsWindow(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")
	visits := []*domain.Visit{
		scheduledVisit(1, at(testDay, 10, 0), 30), // [10:00, 10:30)
	}

	open, err := openIntervalsForVet(vet, at(testDay, 9, 0), at(testDay, 11, 0), visits)
	require.NoError(t, err)

	require.Len(t, open, 2)
	assert.Equal(t, at(testDay, 9, 0), open[0].start)
	assert.Equal(t, at(testDay, 10, 0), open[0].end)
	assert.Equal(t, at(testDay, 10, 30), open[1].start)
	assert.Equal(t, at(testDay, 11, 0), open[1].end)
}

func TestOpenIntervalsForVet_VisitCoversRange(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")
	visits := []*domain.Visit{
		scheduledVisit(1, at(testDay, 9, 0), 240), // [09:00, 13:00)
	}

	open, err := openIntervalsForVet(vet, at(testDay, 10, 0), at(testDay, 12, 0), visits)
	require.NoError(t, err)

	assert.Empty(t, open)
}

func TestOpenIntervalsForVet_RangeClampedToWindow(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")

	// Запрос шире рабочего окна: отдаем только [09:00, 17:00)
	open, err := openIntervalsForVet(vet, at(testDay, 6, 0), at(testDay, 22, 0), nil)
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, at(testDay, 9, 0), open[0].start)
	assert.Equal(t, at(testDay, 17, 0), open[0].end)
}

func TestOpenIntervalsForVet_TouchingVisitsLeaveNoGap(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")
	visits := []*domain.Visit{
		scheduledVisit(1, at(testDay, 10, 0), 60), // [10:00, 11:00)
		scheduledVisit(1, at(testDay, 11, 0), 60), // [11:00, 12:00)
	}

	open, err := openIntervalsForVet(vet, at(testDay, 9, 0), at(testDay, 13, 0), visits)
	require.NoError(t, err)

	// Между соприкасающимися визитами нет вырожденного нулевого слота
	require.Len(t, open, 2)
	assert.Equal(t, at(testDay, 9, 0), open[0].start)
	assert.Equal(t, at(testDay, 10, 0), open[0].end)
	assert.Equal(t, at(testDay, 12, 0), open[1].start)
	assert.Equal(t, at(testDay, 13, 0), open[1].end)
}

func TestOpenIntervalsForVet_CancelledVisitFreesInterval(t *testing.T) {
	vet := testVet(1, "09:00", "17:00")
	cancelled := scheduledVisit(1, at(testDay, 10, 0), 60)
	cancelled.Status = domain.StatusCancelled

	open, err := openIntervalsForVet(vet, at(testDay, 9, 0), at(testDay, 12, 0), []*domain.Visit{cancelled})
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, at(testDay, 9, 0), open[0].start)
	assert.Equal(t, at(testDay, 12, 0), open[0].end)
}

func TestOpenIntervalsForVet_MultiDayRange(t *testing.T) {
	vet := testVet(1, "09:00", "10:00")
	nextDay := testDay.AddDate(0, 0, 1)

	open, err := openIntervalsForVet(vet, at(testDay, 0, 0), at(nextDay, 23, 0), nil)
	require.NoError(t, err)

	// По одному рабочему окну на каждый календарный день
	require.Len(t, open, 2)
	assert.Equal(t, at(testDay, 9, 0), open[0].start)
	assert.Equal(t, at(testDay, 10, 0), open[0].end)
	assert.Equal(t, at(nextDay, 9, 0), open[1].start)
	assert.Equal(t, at(nextDay, 10, 0), open[1].end)
}

func TestMergeSlots(t *testing.T) {
	a := at(testDay, 9, 0)
	b := at(testDay, 10, 0)
	c := at(testDay, 11, 0)

	slots := []domain.AvailableSlot{
		{VetID: 2, Start: a, End: b},
		{VetID: 1, Start: a, End: b},
		{VetID: 1, Start: b, End: c},
	}

	merged := mergeSlots(slots)

	require.Len(t, merged, 2)

	// Одинаковые границы схлопываются, ветеринары отсортированы по ID
	assert.Equal(t, a, merged[0].StartDateTime)
	assert.Equal(t, b, merged[0].EndDateTime)
	assert.Equal(t, []int64{1, 2}, merged[0].VetIDs)

	assert.Equal(t, b, merged[1].StartDateTime)
	assert.Equal(t, c, merged[1].EndDateTime)
	assert.Equal(t, []int64{1}, merged[1].VetIDs)
}

func TestGroupVisitsByVet(t *testing.T) {
	visits := []*domain.Visit{
		scheduledVisit(1, at(testDay, 9, 0), 30),
		scheduledVisit(2, at(testDay, 9, 30), 30),
		scheduledVisit(1, at(testDay, 10, 0), 30),
	}

	grouped := groupVisitsByVet(visits)

	require.Len(t, grouped, 2)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	// Сортировка по началу сохраняется
	assert.True(t, grouped[1][0].StartDateTime.Before(grouped[1][1].StartDateTime))
}
