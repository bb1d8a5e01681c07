package models

type Court struct {
	ID           uint    `json:"id"`
	ArenaID      uint    `json:"arena_id"`
	Name         string  `json:"name"`
	SportsType   string  `json:"sports_type"`
	PricePerHour float64 `json:"price_per_hour"`
}
