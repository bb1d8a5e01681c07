package dto

type ArenaRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	City    string `json:"city" binding:"required,min=2"`
	Address string `json:"address" binding:"required,min=2"`
}

type ArenaUpdate struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=2"`
	City    *string `json:"city,omitempty" binding:"omitempty,min=2"`
	Address *string `json:"address,omitempty" binding:"omitempty,min=2"`
}
