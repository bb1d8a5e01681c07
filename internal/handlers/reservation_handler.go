package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	ucReservation "github.com/BruksfildServices01/arena-manager/internal/usecase/reservation"
)

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	deleteUC *ucReservation.DeleteReservation
	listUC   *ucReservation.ListMyReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	deleteUC *ucReservation.DeleteReservation,
	listUC *ucReservation.ListMyReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

func (h *ReservationHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), middleware.CurrentViewer(c), req.ScheduleID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, res)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
