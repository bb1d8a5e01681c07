package reservation

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

type ListMyReservations struct {
	repo domain.Repository
}

func NewListMyReservations(repo domain.Repository) *ListMyReservations {
	return &ListMyReservations{repo: repo}
}

// Execute ordena pelo horário reservado; reservas sem o horário aninhado
// vão para o fim, na ordem do backend.
func (uc *ListMyReservations) Execute(
	ctx context.Context,
	viewer usecase.Viewer,
) ([]models.Reservation, error) {

	list, err := uc.repo.ListReservations(ctx, viewer.Token)
	if err != nil {
		return nil, err
	}

	out := append([]models.Reservation(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Schedule, out[j].Schedule
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Date != b.Date:
			return a.Date < b.Date
		default:
			return a.StartTime < b.StartTime
		}
	})
	return out, nil
}
