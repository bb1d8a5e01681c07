package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe devolve o perfil já resolvido pela sessão (cacheado por token).
func (h *MeHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentViewer(c).User
	if user == nil {
		httperr.Unauthorized(c, "unauthenticated", "Faça login para continuar.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":         user,
		"display_name": user.DisplayName(),
	})
}
