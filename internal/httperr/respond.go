package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/backend"
)

// Respond traduz um erro de caso de uso para a resposta HTTP.
func Respond(c *gin.Context, err error) {
	var be *backend.Error
	if errors.As(err, &be) {
		respondBackend(c, be)
		return
	}

	var bus BusinessError
	if errors.As(err, &bus) {
		BadRequest(c, bus.Code, businessMessage(bus.Code))
		return
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		Write(c, http.StatusGatewayTimeout, "backend_timeout", "O servidor demorou demais para responder.")
	case errors.Is(err, context.Canceled) && clientGone(c):
		// cliente desistiu; nada a escrever
		c.Abort()
	default:
		Internal(c, "internal_error", "Erro inesperado.")
	}
}

func respondBackend(c *gin.Context, be *backend.Error) {
	switch be.Kind {
	case backend.KindValidation:
		status := be.Status
		if status != http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		Write(c, status, "validation_error", be.Message)
	case backend.KindUnauthorized:
		c.Set(ContextStaleSession, true)
		Unauthorized(c, "session_stale", be.Message)
	case backend.KindForbidden:
		Forbidden(c, "forbidden", be.Message)
	case backend.KindNotFound:
		NotFound(c, "not_found", be.Message)
	case backend.KindConflict:
		Conflict(c, "conflict", be.Message)
	case backend.KindTransport:
		if errors.Is(be, context.DeadlineExceeded) {
			Write(c, http.StatusGatewayTimeout, "backend_timeout", "O servidor demorou demais para responder.")
			return
		}
		if errors.Is(be, context.Canceled) && clientGone(c) {
			c.Abort()
			return
		}
		Write(c, http.StatusBadGateway, "backend_unreachable", be.Message)
	default:
		Write(c, http.StatusBadGateway, "backend_error", be.Message)
	}
}

func clientGone(c *gin.Context) bool {
	return c.Request != nil && c.Request.Context().Err() != nil
}
