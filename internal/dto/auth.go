package dto

import "github.com/BruksfildServices01/arena-manager/internal/models"

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=2"`
	Password string `json:"password" form:"password" binding:"required,min=2"`
}

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Username        string `json:"username" binding:"required,min=2,nospace"`
	Name            string `json:"name" binding:"required,min=2"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type SessionView struct {
	State  string       `json:"state"`
	Reason string       `json:"reason,omitempty"`
	Role   models.Role  `json:"role,omitempty"`
	User   *models.User `json:"user,omitempty"`
}
