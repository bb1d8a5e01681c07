package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// Login usa o fluxo OAuth2 password do backend (form-urlencoded).
func (c *Client) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out dto.TokenResponse
	if err := c.sendForm(ctx, "login", "/auth/login", form, &out); err != nil {
		return nil, err
	}
	if out.TokenType == "" {
		out.TokenType = "bearer"
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	return c.sendJSON(ctx, "register", http.MethodPost, "/auth/register", "", req, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "me", "/user/me/", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
