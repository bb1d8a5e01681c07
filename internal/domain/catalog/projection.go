package catalog

import (
	"sort"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// UnknownCourtName é exibido quando o horário aponta para uma quadra
// que não veio na listagem.
const UnknownCourtName = "N/A"

// ScheduleWithCourt é o horário pronto para renderização.
type ScheduleWithCourt struct {
	ID          uint            `json:"id"`
	CourtID     uint            `json:"court_id"`
	Date        string          `json:"date"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	IsAvailable bool            `json:"is_available"`
	Court       models.CourtRef `json:"court"`
}

func courtIndex(courts []models.Court) map[uint]models.Court {
	idx := make(map[uint]models.Court, len(courts))
	for _, c := range courts {
		idx[c.ID] = c
	}
	return idx
}

func enrich(s models.Schedule, idx map[uint]models.Court) ScheduleWithCourt {
	ref := models.CourtRef{ID: s.CourtID, Name: UnknownCourtName}
	if c, ok := idx[s.CourtID]; ok {
		ref.Name = c.Name
		ref.SportsType = c.SportsType
	}
	return ScheduleWithCourt{
		ID:          s.ID,
		CourtID:     s.CourtID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsAvailable: s.IsAvailable,
		Court:       ref,
	}
}

// EnrichSchedules anexa os dados de exibição da quadra a cada horário.
// Horários de quadra desconhecida ficam com o placeholder, não somem.
func EnrichSchedules(schedules []models.Schedule, courts []models.Court) []ScheduleWithCourt {
	idx := courtIndex(courts)
	out := make([]ScheduleWithCourt, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, enrich(s, idx))
	}
	return out
}

// ReservedScheduleIDs monta o conjunto de horários já reservados pelo usuário.
func ReservedScheduleIDs(reservations []models.Reservation) map[uint]struct{} {
	set := make(map[uint]struct{}, len(reservations))
	for _, r := range reservations {
		if id := r.ScheduleRef(); id != 0 {
			set[id] = struct{}{}
		}
	}
	return set
}

// Bookable: disponível no backend e fora das reservas do usuário.
func Bookable(s models.Schedule, reserved map[uint]struct{}) bool {
	if !s.IsAvailable {
		return false
	}
	_, taken := reserved[s.ID]
	return !taken
}

type ProjectionInput struct {
	Schedules     []models.Schedule
	Courts        []models.Court
	Reserved      map[uint]struct{}
	SelectedIndex int
	Pills         []DatePill
}

// Project agrupa por quadra os horários reserváveis do dia selecionado.
// Cada grupo sai ordenado por start_time; empates mantêm a ordem de origem.
func Project(in ProjectionInput) map[uint][]ScheduleWithCourt {
	out := make(map[uint][]ScheduleWithCourt)

	day, ok := SelectedISO(in.Pills, in.SelectedIndex)
	if !ok {
		return out
	}

	idx := courtIndex(in.Courts)
	for _, s := range in.Schedules {
		if s.CourtID == 0 || s.Date != day {
			continue
		}
		if !Bookable(s, in.Reserved) {
			continue
		}
		out[s.CourtID] = append(out[s.CourtID], enrich(s, idx))
	}

	for courtID := range out {
		group := out[courtID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})
	}
	return out
}
