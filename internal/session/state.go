package session

import (
	"errors"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

type State int

const (
	Unknown State = iota
	Loading
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Motivos de uma sessão anônima.
const (
	ReasonNoToken      = "no_token"
	ReasonExpired      = "token_expired"
	ReasonInvalidToken = "invalid_token"
	ReasonLoggedOut    = "logged_out"
	ReasonStale        = "session_stale"
	ReasonProfile      = "profile_unavailable"
)

var ErrInvalidTransition = errors.New("session: invalid transition")

// Session é a sessão vista por uma requisição:
// Unknown → Loading → Authenticated | Anonymous.
type Session struct {
	state  State
	token  string
	viewer string
	user   *models.User
	reason string
}

func New() *Session {
	return &Session{state: Unknown}
}

// Begin inicia a resolução. Sem token a sessão vai direto para Anonymous.
func (s *Session) Begin(token string) error {
	if s.state != Unknown {
		return ErrInvalidTransition
	}
	if token == "" {
		s.state = Anonymous
		s.reason = ReasonNoToken
		return nil
	}
	s.state = Loading
	s.token = token
	return nil
}

func (s *Session) Resolve(user *models.User) error {
	if s.state != Loading || user == nil {
		return ErrInvalidTransition
	}
	s.state = Authenticated
	s.user = user
	s.reason = ""
	return nil
}

func (s *Session) Fail(reason string) error {
	if s.state != Loading {
		return ErrInvalidTransition
	}
	s.toAnonymous(reason)
	return nil
}

// Logout e Expire valem a partir de qualquer estado.
func (s *Session) Logout() {
	s.toAnonymous(ReasonLoggedOut)
}

func (s *Session) Expire() {
	s.toAnonymous(ReasonExpired)
}

// MarkStale é usado quando o backend rejeita um token que parecia válido.
func (s *Session) MarkStale() {
	s.toAnonymous(ReasonStale)
}

func (s *Session) toAnonymous(reason string) {
	s.state = Anonymous
	s.reason = reason
	s.token = ""
	s.user = nil
}

func (s *Session) State() State   { return s.state }
func (s *Session) Reason() string { return s.reason }
func (s *Session) Token() string  { return s.token }

// Viewer é a chave de cache derivada do token apresentado na requisição.
func (s *Session) Viewer() string { return s.viewer }

func (s *Session) User() *models.User { return s.user }

func (s *Session) Role() models.Role {
	if s.state != Authenticated || s.user == nil {
		return ""
	}
	return s.user.Role
}
