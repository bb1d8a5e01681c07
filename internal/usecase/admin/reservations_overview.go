package admin

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

const (
	userLookupLimit = 8
	unknownUserName = "Usuário removido"
)

// ReservationsOverview junta cada reserva com o usuário dono dela.
// Usuário removido não derruba a listagem: aparece com o nome padrão.
func (s *Service) ReservationsOverview(
	ctx context.Context,
	viewer usecase.Viewer,
) ([]dto.AdminReservationView, error) {

	reservations, err := s.repo.ListAllReservations(ctx, viewer.Token)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Usuários distintos, buscados em paralelo
	// --------------------------------------------------

	ids := make(map[uint]struct{})
	for _, r := range reservations {
		if r.OwnerID != 0 {
			ids[r.OwnerID] = struct{}{}
		}
	}

	var mu sync.Mutex
	users := make(map[uint]*models.User, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(userLookupLimit)
	for id := range ids {
		g.Go(func() error {
			u, err := s.repo.GetUser(gctx, viewer.Token, id)
			if backend.IsKind(err, backend.KindNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			users[id] = u
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Montagem
	// --------------------------------------------------

	out := make([]dto.AdminReservationView, 0, len(reservations))
	for _, r := range reservations {
		view := dto.AdminReservationView{
			ID:        r.ID,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
			Schedule:  r.Schedule,
			User:      dto.ReservationUser{ID: r.OwnerID, Name: unknownUserName},
		}
		if u, ok := users[r.OwnerID]; ok {
			view.User.Name = u.DisplayName()
			view.User.Username = u.Username
			view.User.Email = u.Email
		}
		out = append(out, view)
	}
	return out, nil
}
