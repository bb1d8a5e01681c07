package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	"github.com/BruksfildServices01/arena-manager/internal/session"
	ucAuth "github.com/BruksfildServices01/arena-manager/internal/usecase/auth"
	"github.com/BruksfildServices01/arena-manager/internal/validators"
)

type AuthHandler struct {
	auth        *ucAuth.Service
	emailDomain func(ctx context.Context, email string) bool
}

func NewAuthHandler(auth *ucAuth.Service) *AuthHandler {
	return &AuthHandler{
		auth:        auth,
		emailDomain: validators.IsEmailDomainValid,
	}
}

// Login aceita JSON ou form-urlencoded, conforme o Content-Type.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	out, err := h.auth.Login(c.Request.Context(), req, middleware.GetRequestID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailDomain(c.Request.Context(), req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	out, err := h.auth.Register(c.Request.Context(), req, middleware.GetRequestID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.CurrentViewer(c), middleware.BearerToken(c)); err != nil {
		httperr.Internal(c, "logout_failed", "Não foi possível encerrar a sessão.")
		return
	}
	if s := middleware.CurrentSession(c); s != nil {
		s.Logout()
	}
	c.Status(http.StatusNoContent)
}

// Session devolve o estado resolvido para a requisição, sem exigir login.
func (h *AuthHandler) Session(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		s = session.New()
	}
	httpresp.OK(c, dto.SessionView{
		State:  s.State().String(),
		Reason: s.Reason(),
		Role:   s.Role(),
		User:   s.User(),
	})
}
