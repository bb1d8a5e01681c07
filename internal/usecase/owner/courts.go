package owner

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

func courtsOf(arenaID uint) cache.Invalidation {
	if arenaID == 0 {
		return cache.Invalidation{Prefixes: []string{cache.PrefixCourts, cache.PrefixOwnerCourts}}
	}
	return cache.Invalidation{
		Keys:     []string{cache.CourtsKey(arenaID)},
		Prefixes: []string{cache.OwnerCourtsPrefix(arenaID)},
	}
}

func (s *Service) ListCourts(
	ctx context.Context,
	viewer usecase.Viewer,
	arenaID uint,
) ([]models.Court, error) {

	return s.repo.ListOwnerCourts(ctx, viewer.Token, arenaID)
}

func (s *Service) CreateCourt(
	ctx context.Context,
	viewer usecase.Viewer,
	req dto.CourtRequest,
) (*models.Court, error) {

	court, err := s.repo.CreateCourt(ctx, viewer.Token, req)
	if err != nil {
		return nil, err
	}

	s.done(ctx, viewer, courtsOf(req.ArenaID), "court_created", "court", &court.ID, req)
	return court, nil
}

// UpdateCourt usa a arena devolvida pelo backend; sem ela invalida todas.
func (s *Service) UpdateCourt(
	ctx context.Context,
	viewer usecase.Viewer,
	id uint,
	req dto.CourtUpdate,
) (*models.Court, error) {

	court, err := s.repo.UpdateCourt(ctx, viewer.Token, id, req)
	if err != nil {
		return nil, err
	}

	s.done(ctx, viewer, courtsOf(court.ArenaID), "court_updated", "court", &id, req)
	return court, nil
}

func (s *Service) DeleteCourt(ctx context.Context, viewer usecase.Viewer, id uint) error {
	if err := s.repo.DeleteCourt(ctx, viewer.Token, id); err != nil {
		return err
	}

	inv := courtsOf(0).Merge(cache.Invalidation{
		Keys:     []string{cache.SchedulesKey(id)},
		Prefixes: []string{cache.PrefixReservations},
	})
	s.done(ctx, viewer, inv, "court_deleted", "court", &id, nil)
	return nil
}
