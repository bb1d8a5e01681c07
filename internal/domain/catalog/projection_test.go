package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

func pillsFor(t *testing.T) []DatePill {
	t.Helper()
	return DatePills(time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC))
}

func TestProjectSelectsDay(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Date: "2025-11-10", CourtID: 5, IsAvailable: true},
		{ID: 2, Date: "2025-11-11", CourtID: 5, IsAvailable: true},
	}

	got := Project(ProjectionInput{
		Schedules:     schedules,
		SelectedIndex: 0,
		Pills:         pillsFor(t),
	})

	require.Len(t, got, 1)
	require.Len(t, got[5], 1)
	assert.Equal(t, uint(1), got[5][0].ID)
}

func TestProjectExcludesReservedAndUnavailable(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Date: "2025-11-10", CourtID: 5, StartTime: "08:00", IsAvailable: true},
		{ID: 2, Date: "2025-11-10", CourtID: 5, StartTime: "09:00", IsAvailable: false},
		{ID: 3, Date: "2025-11-10", CourtID: 5, StartTime: "10:00", IsAvailable: true},
	}
	reserved := ReservedScheduleIDs([]models.Reservation{{ID: 9, ScheduleID: 3}})

	got := Project(ProjectionInput{
		Schedules: schedules,
		Reserved:  reserved,
		Pills:     pillsFor(t),
	})

	require.Len(t, got[5], 1)
	assert.Equal(t, uint(1), got[5][0].ID)

	// sem a reserva o horário volta
	got = Project(ProjectionInput{Schedules: schedules, Pills: pillsFor(t)})
	assert.Len(t, got[5], 2)
}

func TestProjectSortsByStartTimeStable(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Date: "2025-11-10", CourtID: 5, StartTime: "10:00", IsAvailable: true},
		{ID: 2, Date: "2025-11-10", CourtID: 5, StartTime: "08:00", IsAvailable: true},
		{ID: 3, Date: "2025-11-10", CourtID: 5, StartTime: "10:00", IsAvailable: true},
		{ID: 4, Date: "2025-11-10", CourtID: 6, StartTime: "07:00", IsAvailable: true},
	}

	got := Project(ProjectionInput{Schedules: schedules, Pills: pillsFor(t)})

	ids := make([]uint, 0)
	for _, s := range got[5] {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []uint{2, 1, 3}, ids)
	assert.Len(t, got[6], 1)
}

func TestProjectEnrichesWithPlaceholder(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Date: "2025-11-10", CourtID: 5, IsAvailable: true},
		{ID: 2, Date: "2025-11-10", CourtID: 8, IsAvailable: true},
		{ID: 3, Date: "2025-11-10", CourtID: 0, IsAvailable: true},
	}
	courts := []models.Court{{ID: 5, Name: "Quadra 1", SportsType: "beach tennis"}}

	got := Project(ProjectionInput{Schedules: schedules, Courts: courts, Pills: pillsFor(t)})

	require.Len(t, got, 2)
	assert.Equal(t, "Quadra 1", got[5][0].Court.Name)
	assert.Equal(t, "beach tennis", got[5][0].Court.SportsType)
	assert.Equal(t, UnknownCourtName, got[8][0].Court.Name)
	assert.Equal(t, uint(8), got[8][0].Court.ID)
}

func TestProjectOutOfRangeIndex(t *testing.T) {
	schedules := []models.Schedule{{ID: 1, Date: "2025-11-10", CourtID: 5, IsAvailable: true}}

	got := Project(ProjectionInput{Schedules: schedules, SelectedIndex: 7, Pills: pillsFor(t)})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReservedScheduleIDsUsesNestedSchedule(t *testing.T) {
	set := ReservedScheduleIDs([]models.Reservation{
		{ID: 1, Schedule: &models.ReservationSchedule{ID: 42}},
		{ID: 2},
	})
	assert.Len(t, set, 1)
	assert.Contains(t, set, uint(42))
}

func TestEnrichSchedulesKeepsOrder(t *testing.T) {
	got := EnrichSchedules([]models.Schedule{
		{ID: 2, CourtID: 1},
		{ID: 1, CourtID: 99},
	}, []models.Court{{ID: 1, Name: "Central"}})

	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, "Central", got[0].Court.Name)
	assert.Equal(t, UnknownCourtName, got[1].Court.Name)
}
