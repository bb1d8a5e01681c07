package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
)

type CourtSchedules struct {
	repo domain.Repository
}

func NewCourtSchedules(repo domain.Repository) *CourtSchedules {
	return &CourtSchedules{repo: repo}
}

// Execute lista os horários de uma quadra já com os dados da quadra.
// Sem arenaID não há como resolver a quadra e o placeholder é usado.
func (uc *CourtSchedules) Execute(
	ctx context.Context,
	courtID uint,
	arenaID uint,
) ([]domain.ScheduleWithCourt, error) {

	schedules, err := uc.repo.ListSchedulesByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if arenaID == 0 {
		return domain.EnrichSchedules(schedules, nil), nil
	}

	courts, err := uc.repo.ListCourtsByArena(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	return domain.EnrichSchedules(schedules, courts), nil
}
