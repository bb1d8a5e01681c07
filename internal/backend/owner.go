package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// --------------------------------------------------
// Arenas
// --------------------------------------------------

func (c *Client) ListOwnerArenas(ctx context.Context, token string) ([]models.Arena, error) {
	var arenas []models.Arena
	if err := c.getJSON(ctx, "list_owner_arenas", "/arenas/", token, &arenas); err != nil {
		return nil, err
	}
	return arenas, nil
}

func (c *Client) CreateArena(ctx context.Context, token string, req dto.ArenaRequest) (*models.Arena, error) {
	var out models.Arena
	if err := c.sendJSON(ctx, "create_arena", http.MethodPost, "/arenas/", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateArena(ctx context.Context, token string, id uint, req dto.ArenaUpdate) (*models.Arena, error) {
	var out models.Arena
	if err := c.sendJSON(ctx, "update_arena", http.MethodPut, idPath("/arenas/%d", id), token, req, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		out.ID = id
	}
	return &out, nil
}

func (c *Client) DeleteArena(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "delete_arena", http.MethodDelete, idPath("/arenas/%d", id), token, nil, nil)
}

// --------------------------------------------------
// Quadras
// --------------------------------------------------

func (c *Client) ListOwnerCourts(ctx context.Context, token string, arenaID uint) ([]models.Court, error) {
	var courts []models.Court
	if err := c.getJSON(ctx, "list_owner_courts", idPath("/courts/%d", arenaID), token, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Client) CreateCourt(ctx context.Context, token string, req dto.CourtRequest) (*models.Court, error) {
	var out models.Court
	if err := c.sendJSON(ctx, "create_court", http.MethodPost, "/courts/", token, req, &out); err != nil {
		return nil, err
	}
	if out.ArenaID == 0 {
		out.ArenaID = req.ArenaID
	}
	return &out, nil
}

func (c *Client) UpdateCourt(ctx context.Context, token string, id uint, req dto.CourtUpdate) (*models.Court, error) {
	var out models.Court
	if err := c.sendJSON(ctx, "update_court", http.MethodPut, idPath("/courts/%d", id), token, req, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		out.ID = id
	}
	return &out, nil
}

func (c *Client) DeleteCourt(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "delete_court", http.MethodDelete, idPath("/courts/%d", id), token, nil, nil)
}

// --------------------------------------------------
// Horários
// --------------------------------------------------

func (c *Client) CreateSchedule(ctx context.Context, token string, req dto.ScheduleRequest) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.sendJSON(ctx, "create_schedule", http.MethodPost, "/schedules/", token, req, &out); err != nil {
		return nil, err
	}
	if out.CourtID == 0 {
		out.CourtID = req.CourtID
	}
	return &out, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, token string, id uint, req dto.ScheduleUpdate) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.sendJSON(ctx, "update_schedule", http.MethodPut, idPath("/schedules/%d", id), token, req, &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		out.ID = id
	}
	return &out, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "delete_schedule", http.MethodDelete, idPath("/schedules/%d", id), token, nil, nil)
}

// CreateScheduleBatch devolve o corpo do backend sem interpretar; o
// formato da resposta do lote não é estável entre versões da API.
func (c *Client) CreateScheduleBatch(ctx context.Context, token string, req dto.ScheduleBatchRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "create_schedule_batch", http.MethodPost, "/schedules/batch", token, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
