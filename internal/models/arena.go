package models

// Arena é um local esportivo pertencente a um único usuário (owner/admin).
type Arena struct {
	ID      uint   `json:"id"`
	OwnerID uint   `json:"owner_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}
