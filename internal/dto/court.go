package dto

type CourtRequest struct {
	ArenaID      uint    `json:"arena_id" binding:"required"`
	Name         string  `json:"name" binding:"required,min=2"`
	SportsType   string  `json:"sports_type" binding:"required,min=2"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

type CourtUpdate struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=2"`
	SportsType   *string  `json:"sports_type,omitempty" binding:"omitempty,min=2"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" binding:"omitempty,gt=0"`
}
