package backend

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

func (c *Client) ListAllReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.getJSON(ctx, "admin_list_reservations", "/admin/reservations/", token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) AdminDeleteReservation(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "admin_delete_reservation", http.MethodDelete, idPath("/admin/reservations/%d", id), token, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "admin_list_users", "/admin/users/", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id uint) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "admin_get_user", idPath("/admin/users/%d", id), token, &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		user.ID = id
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id uint) error {
	return c.sendJSON(ctx, "admin_delete_user", http.MethodDelete, idPath("/admin/users/%d", id), token, nil, nil)
}
