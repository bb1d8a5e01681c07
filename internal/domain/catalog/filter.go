package catalog

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// FilterArenas aplica a busca livre (nome ou cidade, sem diferenciar
// maiúsculas) e a faceta de cidade, quando informada.
func FilterArenas(arenas []models.Arena, query, city string) []models.Arena {
	q := strings.ToLower(strings.TrimSpace(query))
	city = strings.TrimSpace(city)

	out := make([]models.Arena, 0, len(arenas))
	for _, a := range arenas {
		if city != "" && a.City != city {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.City), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Cities devolve as cidades distintas em ordem alfabética.
func Cities(arenas []models.Arena) []string {
	seen := make(map[string]struct{}, len(arenas))
	out := make([]string, 0, len(arenas))
	for _, a := range arenas {
		if a.City == "" {
			continue
		}
		if _, ok := seen[a.City]; ok {
			continue
		}
		seen[a.City] = struct{}{}
		out = append(out, a.City)
	}
	sort.Strings(out)
	return out
}
