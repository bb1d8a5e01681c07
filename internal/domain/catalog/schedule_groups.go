package catalog

import (
	"sort"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

type DateGroup struct {
	Date      string            `json:"date"`
	Schedules []models.Schedule `json:"schedules"`
}

// GroupByDate monta a agenda do owner: datas crescentes e, dentro de cada
// data, horários por start_time.
func GroupByDate(schedules []models.Schedule) []DateGroup {
	byDate := make(map[string][]models.Schedule)
	for _, s := range schedules {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	groups := make([]DateGroup, 0, len(byDate))
	for date, list := range byDate {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StartTime < list[j].StartTime
		})
		groups = append(groups, DateGroup{Date: date, Schedules: list})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})
	return groups
}
