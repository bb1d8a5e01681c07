package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	ucAdmin "github.com/BruksfildServices01/arena-manager/internal/usecase/admin"
)

type AdminHandler struct {
	admin *ucAdmin.Service
}

func NewAdminHandler(admin *ucAdmin.Service) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Reservations(c *gin.Context) {
	out, err := h.admin.ReservationsOverview(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteReservation(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	out, err := h.admin.ListUsers(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.admin.GetUser(c.Request.Context(), middleware.CurrentViewer(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	viewer := middleware.CurrentViewer(c)
	if viewer.User != nil && viewer.User.ID == id {
		httperr.Conflict(c, "cannot_delete_self", "Você não pode remover a própria conta por aqui.")
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), viewer, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
