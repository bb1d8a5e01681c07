package dto

import "github.com/BruksfildServices01/arena-manager/internal/models"

type CreateReservationRequest struct {
	ScheduleID uint `json:"schedule_id" binding:"required"`
}

type ReservationUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type AdminReservationView struct {
	ID        uint                        `json:"id"`
	Status    models.ReservationStatus    `json:"status"`
	CreatedAt string                      `json:"created_at"`
	User      ReservationUser             `json:"user"`
	Schedule  *models.ReservationSchedule `json:"schedule,omitempty"`
}
