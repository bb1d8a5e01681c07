package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	ucOwner "github.com/BruksfildServices01/arena-manager/internal/usecase/owner"
)

// ======================================================
// HANDLER
// ======================================================

type OwnerHandler struct {
	owner *ucOwner.Service
}

func NewOwnerHandler(owner *ucOwner.Service) *OwnerHandler {
	return &OwnerHandler{owner: owner}
}

// ======================================================
// ARENAS
// ======================================================

func (h *OwnerHandler) ListArenas(c *gin.Context) {
	out, err := h.owner.ListArenas(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

// CreateArena fica aberto a qualquer logado: a primeira arena promove o
// usuário a owner no backend.
func (h *OwnerHandler) CreateArena(c *gin.Context) {
	var req dto.ArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.CreateArena(c.Request.Context(), middleware.CurrentViewer(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *OwnerHandler) UpdateArena(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ArenaUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.UpdateArena(c.Request.Context(), middleware.CurrentViewer(c), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *OwnerHandler) DeleteArena(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.owner.DeleteArena(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// COURTS
// ======================================================

func (h *OwnerHandler) ListCourts(c *gin.Context) {
	arenaID, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.owner.ListCourts(c.Request.Context(), middleware.CurrentViewer(c), arenaID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *OwnerHandler) CreateCourt(c *gin.Context) {
	var req dto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.CreateCourt(c.Request.Context(), middleware.CurrentViewer(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *OwnerHandler) UpdateCourt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.CourtUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.UpdateCourt(c.Request.Context(), middleware.CurrentViewer(c), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *OwnerHandler) DeleteCourt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.owner.DeleteCourt(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SCHEDULES
// ======================================================

func (h *OwnerHandler) CourtSchedules(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.owner.CourtSchedules(c.Request.Context(), courtID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *OwnerHandler) CreateSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.CreateSchedule(c.Request.Context(), middleware.CurrentViewer(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *OwnerHandler) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.UpdateSchedule(c.Request.Context(), middleware.CurrentViewer(c), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *OwnerHandler) DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.owner.DeleteSchedule(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// PreviewBatch não toca o backend; serve para o formulário mostrar a
// contagem antes de confirmar.
func (h *OwnerHandler) PreviewBatch(c *gin.Context) {
	var req dto.ScheduleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.PreviewBatch(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *OwnerHandler) CreateBatch(c *gin.Context) {
	var req dto.ScheduleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.owner.CreateBatch(c.Request.Context(), middleware.CurrentViewer(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}
