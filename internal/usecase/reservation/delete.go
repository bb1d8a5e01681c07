package reservation

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

type DeleteReservation struct {
	repo  domain.Repository
	cache *cache.Coordinator
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	coord *cache.Coordinator,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		cache: coord,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	viewer usecase.Viewer,
	reservationID uint,
) error {

	if err := uc.repo.DeleteReservation(ctx, viewer.Token, reservationID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, invalidation(viewer.Key))

	uc.audit.Dispatch(viewer.Actor().Event(
		"reservation_deleted",
		"reservation",
		&reservationID,
		nil,
	))

	return nil
}
