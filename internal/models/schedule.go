package models

import "encoding/json"

// Schedule é um horário reservável de uma quadra.
// Date no formato YYYY-MM-DD, StartTime/EndTime em HH:MM.
type Schedule struct {
	ID          uint   `json:"id"`
	CourtID     uint   `json:"court_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// UnmarshalJSON aceita "is_available" e "available"; quando o backend
// omite os dois o horário é tratado como disponível.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	type plain Schedule
	var raw struct {
		plain
		IsAvailable *bool `json:"is_available"`
		Available   *bool `json:"available"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Schedule(raw.plain)
	switch {
	case raw.IsAvailable != nil:
		s.IsAvailable = *raw.IsAvailable
	case raw.Available != nil:
		s.IsAvailable = *raw.Available
	default:
		s.IsAvailable = true
	}
	return nil
}
