package usecase

import (
	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// Viewer é o usuário autenticado da requisição, como os casos de uso o veem.
type Viewer struct {
	Token     string
	Key       string
	RequestID string
	User      *models.User
}

func (v Viewer) Authenticated() bool {
	return v.Token != ""
}

func (v Viewer) Actor() audit.Actor {
	a := audit.Actor{RequestID: v.RequestID}
	if v.User != nil {
		if v.User.ID != 0 {
			id := v.User.ID
			a.UserID = &id
		}
		a.Username = v.User.Username
		a.Role = string(v.User.Role)
	}
	return a
}
