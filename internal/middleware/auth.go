package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/session"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

const ContextSession = "session"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) *session.Session
	Forget(ctx context.Context, viewer string)
}

// BearerToken devolve o token do cabeçalho Authorization, sem validar.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionMiddleware resolve a sessão de toda requisição. Se algum handler
// receber 401 do backend, o cache do usuário é descartado ao final.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := resolver.Resolve(c.Request.Context(), BearerToken(c))
		c.Set(ContextSession, s)

		c.Next()

		if c.GetBool(httperr.ContextStaleSession) {
			resolver.Forget(c.Request.Context(), s.Viewer())
			s.MarkStale()
		}
	}
}

func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// CurrentViewer monta o Viewer dos casos de uso a partir da sessão.
func CurrentViewer(c *gin.Context) usecase.Viewer {
	v := usecase.Viewer{RequestID: GetRequestID(c)}
	s := CurrentSession(c)
	if session.HasValidToken(s) {
		v.Token = s.Token()
		v.Key = s.Viewer()
		v.User = s.User()
	}
	return v
}

// ======================================================
// GUARDS
// ======================================================

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if session.HasValidToken(s) {
			c.Next()
			return
		}

		reason := session.ReasonNoToken
		if s != nil {
			reason = s.Reason()
		}

		switch reason {
		case session.ReasonExpired:
			httperr.Unauthorized(c, "token_expired", "Sua sessão expirou. Entre novamente.")
		case session.ReasonStale, session.ReasonLoggedOut, session.ReasonInvalidToken:
			httperr.Unauthorized(c, "session_stale", "Sessão inválida. Entre novamente.")
		case session.ReasonProfile:
			httperr.Write(c, http.StatusServiceUnavailable, "session_unavailable", "Não foi possível validar a sessão agora.")
		default:
			httperr.Unauthorized(c, "unauthenticated", "Faça login para continuar.")
		}
	}
}

// RequireRole pressupõe RequireAuth antes na cadeia.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.HasRole(CurrentSession(c), roles...) {
			httperr.Forbidden(c, "forbidden", "Você não tem permissão para esta ação.")
			return
		}
		c.Next()
	}
}

// RequireAnonymous protege login e cadastro de quem já está logado.
func RequireAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.HasValidToken(CurrentSession(c)) {
			httperr.Conflict(c, "already_authenticated", "Você já está conectado.")
			return
		}
		c.Next()
	}
}
