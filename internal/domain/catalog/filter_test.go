package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

var sampleArenas = []models.Arena{
	{ID: 1, Name: "Arena Beira Rio", City: "Porto Alegre"},
	{ID: 2, Name: "Quadra Central", City: "São Paulo"},
	{ID: 3, Name: "Areia Fina", City: "Porto Alegre"},
	{ID: 4, Name: "Sem Cidade"},
}

func TestFilterArenasQueryMatchesNameOrCity(t *testing.T) {
	got := FilterArenas(sampleArenas, "porto", "")
	assert.ElementsMatch(t, []uint{1, 3}, arenaIDs(got))

	got = FilterArenas(sampleArenas, "CENTRAL", "")
	assert.Equal(t, []uint{2}, arenaIDs(got))
}

func TestFilterArenasCityFacet(t *testing.T) {
	got := FilterArenas(sampleArenas, "", "Porto Alegre")
	for _, a := range got {
		assert.Equal(t, "Porto Alegre", a.City)
	}
	assert.Len(t, got, 2)

	got = FilterArenas(sampleArenas, "areia", "Porto Alegre")
	assert.Equal(t, []uint{3}, arenaIDs(got))
}

func TestFilterArenasNoMatch(t *testing.T) {
	got := FilterArenas(sampleArenas, "tênis", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCities(t *testing.T) {
	assert.Equal(t, []string{"Porto Alegre", "São Paulo"}, Cities(sampleArenas))
}

func arenaIDs(arenas []models.Arena) []uint {
	ids := make([]uint, 0, len(arenas))
	for _, a := range arenas {
		ids = append(ids, a.ID)
	}
	return ids
}
