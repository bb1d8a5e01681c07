package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

type ArenaList struct {
	Arenas []models.Arena `json:"arenas"`
	Cities []string       `json:"cities"`
}

type ListArenas struct {
	repo domain.Repository
}

func NewListArenas(repo domain.Repository) *ListArenas {
	return &ListArenas{repo: repo}
}

// Execute filtra o catálogo; as cidades vêm sempre da lista completa para
// a faceta não sumir depois de escolhida.
func (uc *ListArenas) Execute(
	ctx context.Context,
	query string,
	city string,
) (*ArenaList, error) {

	arenas, err := uc.repo.ListArenas(ctx)
	if err != nil {
		return nil, err
	}

	return &ArenaList{
		Arenas: domain.FilterArenas(arenas, query, city),
		Cities: domain.Cities(arenas),
	}, nil
}
