package repository

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// CachedRepository é o backend REST com as leituras passando pelo cache.
// Mutações seguem direto para o cliente; quem invalida é o caso de uso.
type CachedRepository struct {
	*backend.Client
	cache *cache.Coordinator
}

func NewCachedRepository(client *backend.Client, coord *cache.Coordinator) *CachedRepository {
	return &CachedRepository{Client: client, cache: coord}
}

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func (r *CachedRepository) ListArenas(ctx context.Context) ([]models.Arena, error) {
	return cache.Fetch(ctx, r.cache, cache.KeyArenas, r.Client.ListArenas)
}

func (r *CachedRepository) ListCourtsByArena(
	ctx context.Context,
	arenaID uint,
) ([]models.Court, error) {

	return cache.Fetch(ctx, r.cache, cache.CourtsKey(arenaID),
		func(ctx context.Context) ([]models.Court, error) {
			return r.Client.ListCourtsByArena(ctx, arenaID)
		})
}

func (r *CachedRepository) ListSchedulesByCourt(
	ctx context.Context,
	courtID uint,
) ([]models.Schedule, error) {

	return cache.Fetch(ctx, r.cache, cache.SchedulesKey(courtID),
		func(ctx context.Context) ([]models.Schedule, error) {
			return r.Client.ListSchedulesByCourt(ctx, courtID)
		})
}

// --------------------------------------------------
// Dados do usuário (chave derivada do token)
// --------------------------------------------------

func (r *CachedRepository) Me(ctx context.Context, token string) (*models.User, error) {
	return cache.Fetch(ctx, r.cache, cache.MeKey(cache.ViewerKey(token)),
		func(ctx context.Context) (*models.User, error) {
			return r.Client.Me(ctx, token)
		})
}

func (r *CachedRepository) ListReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	return cache.Fetch(ctx, r.cache, cache.ReservationsKey(cache.ViewerKey(token)),
		func(ctx context.Context) ([]models.Reservation, error) {
			return r.Client.ListReservations(ctx, token)
		})
}

func (r *CachedRepository) ListOwnerArenas(ctx context.Context, token string) ([]models.Arena, error) {
	return cache.Fetch(ctx, r.cache, cache.OwnerArenasKey(cache.ViewerKey(token)),
		func(ctx context.Context) ([]models.Arena, error) {
			return r.Client.ListOwnerArenas(ctx, token)
		})
}

func (r *CachedRepository) ListOwnerCourts(
	ctx context.Context,
	token string,
	arenaID uint,
) ([]models.Court, error) {

	return cache.Fetch(ctx, r.cache, cache.OwnerCourtsKey(arenaID, cache.ViewerKey(token)),
		func(ctx context.Context) ([]models.Court, error) {
			return r.Client.ListOwnerCourts(ctx, token, arenaID)
		})
}

var _ catalog.Repository = (*CachedRepository)(nil)
