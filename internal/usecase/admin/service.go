package admin

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

type Service struct {
	repo  domain.Repository
	cache *cache.Coordinator
	audit *audit.Dispatcher
}

func NewService(
	repo domain.Repository,
	coord *cache.Coordinator,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:  repo,
		cache: coord,
		audit: audit,
	}
}

// DeleteReservation: a reserva pode ser de qualquer usuário, então as
// listas de todos caem.
func (s *Service) DeleteReservation(ctx context.Context, viewer usecase.Viewer, id uint) error {
	if err := s.repo.AdminDeleteReservation(ctx, viewer.Token, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.Invalidation{
		Prefixes: []string{cache.PrefixReservations, cache.PrefixSchedules},
	})
	s.audit.Dispatch(viewer.Actor().Event("admin_reservation_deleted", "reservation", &id, nil))
	return nil
}

func (s *Service) ListUsers(ctx context.Context, viewer usecase.Viewer) ([]models.User, error) {
	return s.repo.ListUsers(ctx, viewer.Token)
}

func (s *Service) GetUser(ctx context.Context, viewer usecase.Viewer, id uint) (*models.User, error) {
	return s.repo.GetUser(ctx, viewer.Token, id)
}

// DeleteUser: as arenas do usuário somem em cascata no backend; o
// catálogo inteiro é descartado.
func (s *Service) DeleteUser(ctx context.Context, viewer usecase.Viewer, id uint) error {
	if err := s.repo.DeleteUser(ctx, viewer.Token, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.Invalidation{
		Keys: []string{cache.KeyArenas},
		Prefixes: []string{
			cache.PrefixCourts,
			cache.PrefixOwner,
			cache.PrefixSchedules,
			cache.PrefixReservations,
			cache.PrefixMe,
		},
	})
	s.audit.Dispatch(viewer.Actor().Event("user_deleted", "user", &id, nil))
	return nil
}
