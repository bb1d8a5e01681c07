package reservation

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

// invalidation vale para criar e cancelar: muda a lista do usuário e a
// disponibilidade de algum horário (o backend não diz de qual quadra).
func invalidation(viewerKey string) cache.Invalidation {
	return cache.Invalidation{
		Keys:     []string{cache.ReservationsKey(viewerKey)},
		Prefixes: []string{cache.PrefixSchedules},
	}
}

type CreateReservation struct {
	repo  domain.Repository
	cache *cache.Coordinator
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	coord *cache.Coordinator,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		cache: coord,
		audit: audit,
	}
}

// Execute faz uma única chamada ao backend. Em caso de erro nada é
// invalidado e a mensagem do backend sobe como está.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	viewer usecase.Viewer,
	scheduleID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.CreateReservation(ctx, viewer.Token, scheduleID)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, invalidation(viewer.Key))

	uc.audit.Dispatch(viewer.Actor().Event(
		"reservation_created",
		"reservation",
		&res.ID,
		map[string]uint{"schedule_id": scheduleID},
	))

	return res, nil
}
