package backend

import (
	"context"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func (c *Client) ListArenas(ctx context.Context) ([]models.Arena, error) {
	var arenas []models.Arena
	if err := c.getJSON(ctx, "list_arenas", "/public/arenas", "", &arenas); err != nil {
		return nil, err
	}
	return arenas, nil
}

func (c *Client) ListCourtsByArena(ctx context.Context, arenaID uint) ([]models.Court, error) {
	var courts []models.Court
	if err := c.getJSON(ctx, "list_courts", idPath("/public/arenas/%d/courts", arenaID), "", &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *Client) ListSchedulesByCourt(ctx context.Context, courtID uint) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := c.getJSON(ctx, "list_schedules", idPath("/public/courts/%d/schedules", courtID), "", &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
