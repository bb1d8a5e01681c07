package owner

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

func (s *Service) ListArenas(ctx context.Context, viewer usecase.Viewer) ([]models.Arena, error) {
	return s.repo.ListOwnerArenas(ctx, viewer.Token)
}

// CreateArena: o backend promove um client a owner na primeira arena,
// por isso o perfil em cache também cai.
func (s *Service) CreateArena(
	ctx context.Context,
	viewer usecase.Viewer,
	req dto.ArenaRequest,
) (*models.Arena, error) {

	arena, err := s.repo.CreateArena(ctx, viewer.Token, req)
	if err != nil {
		return nil, err
	}

	s.done(ctx, viewer, cache.Invalidation{
		Keys: []string{
			cache.KeyArenas,
			cache.OwnerArenasKey(viewer.Key),
			cache.MeKey(viewer.Key),
		},
	}, "arena_created", "arena", &arena.ID, req)

	return arena, nil
}

func (s *Service) UpdateArena(
	ctx context.Context,
	viewer usecase.Viewer,
	id uint,
	req dto.ArenaUpdate,
) (*models.Arena, error) {

	arena, err := s.repo.UpdateArena(ctx, viewer.Token, id, req)
	if err != nil {
		return nil, err
	}

	// admin pode editar arena de outro dono: limpa a lista de todos
	s.done(ctx, viewer, cache.Invalidation{
		Keys:     []string{cache.KeyArenas},
		Prefixes: []string{cache.PrefixOwnerArenas},
	}, "arena_updated", "arena", &id, req)

	return arena, nil
}

// DeleteArena: o backend apaga em cascata quadras, horários e reservas.
func (s *Service) DeleteArena(ctx context.Context, viewer usecase.Viewer, id uint) error {
	if err := s.repo.DeleteArena(ctx, viewer.Token, id); err != nil {
		return err
	}

	s.done(ctx, viewer, cache.Invalidation{
		Keys: []string{cache.KeyArenas, cache.CourtsKey(id)},
		Prefixes: []string{
			cache.PrefixOwnerArenas,
			cache.OwnerCourtsPrefix(id),
			cache.PrefixSchedules,
			cache.PrefixReservations,
		},
	}, "arena_deleted", "arena", &id, nil)

	return nil
}
