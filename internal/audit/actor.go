package audit

// Actor identifica quem fez a ação dentro de uma requisição.
type Actor struct {
	RequestID string
	UserID    *uint
	Username  string
	Role      string
}

func (a Actor) Event(action, entity string, entityID *uint, meta any) Event {
	return Event{
		RequestID:     a.RequestID,
		ActorID:       a.UserID,
		ActorUsername: a.Username,
		ActorRole:     a.Role,
		Action:        action,
		Entity:        entity,
		EntityID:      entityID,
		Metadata:      meta,
	}
}
