package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/httpresp"
	"github.com/BruksfildServices01/arena-manager/internal/infra/repository"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	List(ctx context.Context, f repository.AuditLogFilter) (*repository.AuditLogPage, error)
}

type AuditLogsHandler struct {
	logs AuditLogLister
}

// NewAuditLogsHandler aceita nil quando o serviço sobe sem banco.
func NewAuditLogsHandler(logs AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if h.logs == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "audit_disabled", "Auditoria indisponível neste ambiente.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := repository.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if raw := c.Query("actor_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_actor_id", "Identificador inválido.")
			return
		}
		id := uint(v)
		f.ActorID = &id
	}

	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse("2006-01-02", raw); err == nil {
			f.From = &from
		}
	}

	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse("2006-01-02", raw); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	out, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}
	httpresp.OK(c, out)
}
