package session

import (
	"slices"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

func HasValidToken(s *Session) bool {
	return s != nil && s.State() == Authenticated && s.Token() != ""
}

func HasRole(s *Session, permitted ...models.Role) bool {
	if !HasValidToken(s) {
		return false
	}
	return slices.Contains(permitted, s.Role())
}

func IsAnonymous(s *Session) bool {
	return s == nil || s.State() == Anonymous
}
