package owner

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

type BatchPreview struct {
	Count int           `json:"count"`
	Slots []domain.Slot `json:"slots"`
}

// CourtSchedules é a agenda da quadra agrupada por data.
func (s *Service) CourtSchedules(ctx context.Context, courtID uint) ([]domain.DateGroup, error) {
	list, err := s.repo.ListSchedulesByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}
	return domain.GroupByDate(list), nil
}

func (s *Service) CreateSchedule(
	ctx context.Context,
	viewer usecase.Viewer,
	req dto.ScheduleRequest,
) (*models.Schedule, error) {

	sch, err := s.repo.CreateSchedule(ctx, viewer.Token, req)
	if err != nil {
		return nil, err
	}

	s.done(ctx, viewer, cache.Invalidation{
		Keys: []string{cache.SchedulesKey(req.CourtID)},
	}, "schedule_created", "schedule", &sch.ID, req)

	return sch, nil
}

// UpdateSchedule também derruba as reservas: elas trazem data e hora
// do horário aninhadas.
func (s *Service) UpdateSchedule(
	ctx context.Context,
	viewer usecase.Viewer,
	id uint,
	req dto.ScheduleUpdate,
) (*models.Schedule, error) {

	sch, err := s.repo.UpdateSchedule(ctx, viewer.Token, id, req)
	if err != nil {
		return nil, err
	}

	inv := cache.Invalidation{Prefixes: []string{cache.PrefixReservations}}
	if sch.CourtID != 0 {
		inv.Keys = []string{cache.SchedulesKey(sch.CourtID)}
	} else {
		inv.Prefixes = append(inv.Prefixes, cache.PrefixSchedules)
	}

	s.done(ctx, viewer, inv, "schedule_updated", "schedule", &id, req)
	return sch, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, viewer usecase.Viewer, id uint) error {
	if err := s.repo.DeleteSchedule(ctx, viewer.Token, id); err != nil {
		return err
	}

	s.done(ctx, viewer, cache.Invalidation{
		Prefixes: []string{cache.PrefixSchedules, cache.PrefixReservations},
	}, "schedule_deleted", "schedule", &id, nil)
	return nil
}

// PreviewBatch mostra o que o lote criaria, sem chamar o backend.
func (s *Service) PreviewBatch(req dto.ScheduleBatchRequest) (*BatchPreview, error) {
	slots, err := domain.ExpandBatch(req)
	if err != nil {
		return nil, err
	}
	return &BatchPreview{Count: len(slots), Slots: slots}, nil
}

// CreateBatch valida localmente antes de mandar o lote ao backend.
func (s *Service) CreateBatch(
	ctx context.Context,
	viewer usecase.Viewer,
	req dto.ScheduleBatchRequest,
) (json.RawMessage, error) {

	count, err := domain.ValidateBatch(req)
	if err != nil {
		return nil, err
	}

	out, err := s.repo.CreateScheduleBatch(ctx, viewer.Token, req)
	if err != nil {
		return nil, err
	}

	s.done(ctx, viewer, cache.Invalidation{
		Keys: []string{cache.SchedulesKey(req.CourtID)},
	}, "schedule_batch_created", "court", &req.CourtID, map[string]any{
		"slots":      count,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	})

	return out, nil
}
