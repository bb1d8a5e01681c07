package owner

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

// Service reúne a gestão de arenas, quadras e horários do owner.
// Toda mutação bem-sucedida invalida o cache e gera um evento de auditoria.
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

func (s *Service) done(
	ctx context.Context,
	viewer usecase.Viewer,
	inv cache.Invalidation,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {
	s.cache.Invalidate(ctx, inv)
	s.audit.Dispatch(viewer.Actor().Event(action, entity, entityID, meta))
}
