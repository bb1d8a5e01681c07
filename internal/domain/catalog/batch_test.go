package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

func batchReq() dto.ScheduleBatchRequest {
	return dto.ScheduleBatchRequest{
		CourtID:         1,
		StartDate:       "2025-11-10", // segunda
		EndDate:         "2025-11-16", // domingo
		StartTime:       "08:00",
		EndTime:         "10:30",
		IntervalMinutes: 60,
	}
}

func TestExpandBatchFullWeek(t *testing.T) {
	slots, err := ExpandBatch(batchReq())
	require.NoError(t, err)

	// 2 fatias inteiras por dia, 7 dias
	require.Len(t, slots, 14)
	assert.Equal(t, Slot{Date: "2025-11-10", StartTime: "08:00", EndTime: "09:00"}, slots[0])
	assert.Equal(t, Slot{Date: "2025-11-16", StartTime: "09:00", EndTime: "10:00"}, slots[13])
}

func TestExpandBatchWeekdayFilter(t *testing.T) {
	req := batchReq()
	req.Weekdays = []int{0, 6} // segunda e domingo

	slots, err := ExpandBatch(req)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "2025-11-10", slots[0].Date)
	assert.Equal(t, "2025-11-16", slots[2].Date)
}

func TestValidateBatchMonthFilterEmpty(t *testing.T) {
	req := batchReq()
	req.Months = []int{1}

	_, err := ValidateBatch(req)
	assert.True(t, httperr.IsBusiness(err, "batch_empty"))
}

func TestValidateBatchErrors(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.ScheduleBatchRequest)
		code   string
	}{
		"bad date":             {func(r *dto.ScheduleBatchRequest) { r.StartDate = "10/11/2025" }, "invalid_date"},
		"reversed range":       {func(r *dto.ScheduleBatchRequest) { r.EndDate = "2025-11-01" }, "invalid_date_range"},
		"bad time":             {func(r *dto.ScheduleBatchRequest) { r.EndTime = "25h" }, "invalid_time"},
		"reversed time":        {func(r *dto.ScheduleBatchRequest) { r.EndTime = "07:00" }, "invalid_time_range"},
		"zero interval":        {func(r *dto.ScheduleBatchRequest) { r.IntervalMinutes = 0 }, "invalid_interval"},
		"interval above a day": {func(r *dto.ScheduleBatchRequest) { r.IntervalMinutes = 24*60 + 1 }, "invalid_interval"},
		"overflowing interval": {func(r *dto.ScheduleBatchRequest) { r.IntervalMinutes = 307445734 }, "invalid_interval"},
		"no whole slot":        {func(r *dto.ScheduleBatchRequest) { r.IntervalMinutes = 180 }, "batch_empty"},
		"weekday":              {func(r *dto.ScheduleBatchRequest) { r.Weekdays = []int{7} }, "invalid_weekday"},
		"month":                {func(r *dto.ScheduleBatchRequest) { r.Months = []int{13} }, "invalid_month"},
		"too large": {func(r *dto.ScheduleBatchRequest) {
			r.EndDate = "2027-11-10"
			r.StartTime = "00:00"
			r.EndTime = "23:00"
			r.IntervalMinutes = 30
		}, "batch_too_large"},
		"whole calendar": {func(r *dto.ScheduleBatchRequest) {
			r.StartDate = "0001-01-01"
			r.EndDate = "9999-12-31"
		}, "batch_too_large"},
		"whole calendar filtered": {func(r *dto.ScheduleBatchRequest) {
			r.StartDate = "0001-01-01"
			r.EndDate = "9999-12-31"
			r.Weekdays = []int{2}
			r.Months = []int{2}
		}, "batch_too_large"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := batchReq()
			tc.mutate(&req)
			_, err := ValidateBatch(req)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestExpandBatchMatchesValidatedCount(t *testing.T) {
	req := batchReq()
	req.StartTime = "00:00"
	req.EndTime = "23:59"
	req.IntervalMinutes = 1
	req.EndDate = req.StartDate

	n, err := ValidateBatch(req)
	require.NoError(t, err)
	assert.Equal(t, 1439, n)

	slots, err := ExpandBatch(req)
	require.NoError(t, err)
	require.Len(t, slots, n)
	assert.Equal(t, "23:58", slots[n-1].StartTime)
	assert.Equal(t, "23:59", slots[n-1].EndTime)
}

func TestValidateBatchAcceptsSeconds(t *testing.T) {
	req := batchReq()
	req.StartTime = "08:00:00"
	req.EndTime = "09:00:00"

	n, err := ValidateBatch(req)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate([]models.Schedule{
		{ID: 1, Date: "2025-11-11", StartTime: "09:00"},
		{ID: 2, Date: "2025-11-10", StartTime: "10:00"},
		{ID: 3, Date: "2025-11-10", StartTime: "08:00"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-11-10", groups[0].Date)
	assert.Equal(t, uint(3), groups[0].Schedules[0].ID)
	assert.Equal(t, uint(2), groups[0].Schedules[1].ID)
	assert.Equal(t, "2025-11-11", groups[1].Date)
}
