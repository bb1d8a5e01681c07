package dto

type ScheduleRequest struct {
	CourtID   uint   `json:"court_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
}

type ScheduleUpdate struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// ScheduleBatchRequest gera horários em lote para uma quadra.
// Weekdays segue a convenção do backend: 0 = segunda ... 6 = domingo.
type ScheduleBatchRequest struct {
	CourtID         uint   `json:"court_id" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	IntervalMinutes int    `json:"interval_minutes" binding:"required,gt=0,max=1440"`
	Weekdays        []int  `json:"weekdays,omitempty" binding:"omitempty,dive,min=0,max=6"`
	Months          []int  `json:"months,omitempty" binding:"omitempty,dive,min=1,max=12"`
}
