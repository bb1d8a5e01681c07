package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID     string `gorm:"size:64;index" json:"request_id"`
	ActorID       *uint  `gorm:"index" json:"actor_id"`
	ActorUsername string `gorm:"size:100" json:"actor_username"`
	ActorRole     string `gorm:"size:20" json:"actor_role"`
	Action        string `gorm:"size:50;not null;index" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
