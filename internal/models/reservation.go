package models

type ReservationStatus string

const (
	ReservationScheduled ReservationStatus = "Agendado"
	ReservationOccupied  ReservationStatus = "Ocupado"
)

type CourtRef struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	SportsType string `json:"sports_type,omitempty"`
}

type ReservationSchedule struct {
	ID        uint     `json:"id"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Court     CourtRef `json:"court"`
}

type Reservation struct {
	ID         uint                 `json:"id"`
	ScheduleID uint                 `json:"schedule_id,omitempty"`
	OwnerID    uint                 `json:"owner_id,omitempty"`
	Status     ReservationStatus    `json:"status"`
	CreatedAt  string               `json:"created_at"`
	Schedule   *ReservationSchedule `json:"schedule,omitempty"`
}

// ScheduleRef resolve o horário referenciado, mesmo quando o backend
// envia apenas o objeto schedule aninhado.
func (r Reservation) ScheduleRef() uint {
	if r.ScheduleID != 0 {
		return r.ScheduleID
	}
	if r.Schedule != nil {
		return r.Schedule.ID
	}
	return 0
}
