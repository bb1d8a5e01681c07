package backend

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

func (c *Client) ListReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.getJSON(ctx, "list_reservations", "/reservations/", token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, scheduleID uint) (*models.Reservation, error) {
	in := struct {
		ScheduleID uint `json:"schedule_id"`
	}{ScheduleID: scheduleID}

	var out models.Reservation
	if err := c.sendJSON(ctx, "create_reservation", http.MethodPost, "/reservations/", token, in, &out); err != nil {
		return nil, err
	}
	if out.ScheduleID == 0 {
		out.ScheduleID = scheduleID
	}
	return &out, nil
}

func (c *Client) DeleteReservation(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "delete_reservation", http.MethodDelete, idPath("/reservations/%d", id), token, nil, nil)
}
