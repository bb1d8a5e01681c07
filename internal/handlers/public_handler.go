package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/arena-manager/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	listArenas     *ucCatalog.ListArenas
	availability   *ucCatalog.GetArenaAvailability
	courtSchedules *ucCatalog.CourtSchedules
	loc            *time.Location
	now            func() time.Time
}

func NewPublicHandler(
	listArenas *ucCatalog.ListArenas,
	availability *ucCatalog.GetArenaAvailability,
	courtSchedules *ucCatalog.CourtSchedules,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		listArenas:     listArenas,
		availability:   availability,
		courtSchedules: courtSchedules,
		loc:            loc,
		now:            time.Now,
	}
}

// ======================================================
// DATE PILLS
// ======================================================

func (h *PublicHandler) DatePills(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"pills": domain.DatePills(h.now().In(h.loc)),
	})
}

// ======================================================
// ARENAS
// ======================================================

func (h *PublicHandler) ListArenas(c *gin.Context) {
	out, err := h.listArenas.Execute(c.Request.Context(), c.Query("query"), c.Query("city"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// Availability: ?day=N escolhe a pílula (0 = hoje). Logado, os horários
// que o próprio usuário já reservou ficam de fora.
func (h *PublicHandler) Availability(c *gin.Context) {
	arenaID, ok := paramID(c, "id")
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.DefaultQuery("day", "0"))
	if err != nil {
		httperr.BadRequest(c, "invalid_day_index", "Dia selecionado inválido.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), ucCatalog.AvailabilityInput{
		ArenaID:  arenaID,
		DayIndex: day,
		Viewer:   middleware.CurrentViewer(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// COURT SCHEDULES
// ======================================================

func (h *PublicHandler) CourtSchedules(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	arenaID, ok := queryID(c, "arena_id")
	if !ok {
		return
	}

	out, err := h.courtSchedules.Execute(c.Request.Context(), courtID, arenaID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}
