package catalog

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
)

// WarmCatalog recarrega arenas e quadras públicas para que a primeira
// visita depois de expirar o TTL não pague a ida ao backend.
type WarmCatalog struct {
	repo  domain.Repository
	cache *cache.Coordinator
}

func NewWarmCatalog(repo domain.Repository, coord *cache.Coordinator) *WarmCatalog {
	return &WarmCatalog{repo: repo, cache: coord}
}

// Execute devolve quantas arenas foram carregadas.
func (uc *WarmCatalog) Execute(ctx context.Context) (int, error) {
	if err := uc.cache.Apply(ctx, cache.Invalidation{
		Keys:     []string{cache.KeyArenas},
		Prefixes: []string{cache.PrefixCourts},
	}); err != nil {
		return 0, err
	}

	arenas, err := uc.repo.ListArenas(ctx)
	if err != nil {
		return 0, err
	}

	for _, a := range arenas {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := uc.repo.ListCourtsByArena(ctx, a.ID); err != nil {
			return 0, err
		}
	}
	return len(arenas), nil
}
