package catalog

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// Repository é a visão do backend REST usada pelos casos de uso.
// token é o bearer do usuário da requisição; chamadas públicas não levam token.
type Repository interface {
	// -------- Catálogo público --------
	ListArenas(ctx context.Context) ([]models.Arena, error)

	ListCourtsByArena(
		ctx context.Context,
		arenaID uint,
	) ([]models.Court, error)

	ListSchedulesByCourt(
		ctx context.Context,
		courtID uint,
	) ([]models.Schedule, error)

	// -------- Sessão --------
	Login(
		ctx context.Context,
		username string,
		password string,
	) (*dto.TokenResponse, error)

	Register(ctx context.Context, req dto.RegisterRequest) error

	Me(ctx context.Context, token string) (*models.User, error)

	// -------- Reservas --------
	ListReservations(ctx context.Context, token string) ([]models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		token string,
		scheduleID uint,
	) (*models.Reservation, error)

	DeleteReservation(ctx context.Context, token string, id uint) error

	// -------- Owner: arenas --------
	ListOwnerArenas(ctx context.Context, token string) ([]models.Arena, error)

	CreateArena(
		ctx context.Context,
		token string,
		req dto.ArenaRequest,
	) (*models.Arena, error)

	UpdateArena(
		ctx context.Context,
		token string,
		id uint,
		req dto.ArenaUpdate,
	) (*models.Arena, error)

	DeleteArena(ctx context.Context, token string, id uint) error

	// -------- Owner: quadras --------
	ListOwnerCourts(
		ctx context.Context,
		token string,
		arenaID uint,
	) ([]models.Court, error)

	CreateCourt(
		ctx context.Context,
		token string,
		req dto.CourtRequest,
	) (*models.Court, error)

	UpdateCourt(
		ctx context.Context,
		token string,
		id uint,
		req dto.CourtUpdate,
	) (*models.Court, error)

	DeleteCourt(ctx context.Context, token string, id uint) error

	// -------- Owner: horários --------
	CreateSchedule(
		ctx context.Context,
		token string,
		req dto.ScheduleRequest,
	) (*models.Schedule, error)

	UpdateSchedule(
		ctx context.Context,
		token string,
		id uint,
		req dto.ScheduleUpdate,
	) (*models.Schedule, error)

	DeleteSchedule(ctx context.Context, token string, id uint) error

	CreateScheduleBatch(
		ctx context.Context,
		token string,
		req dto.ScheduleBatchRequest,
	) (json.RawMessage, error)

	// -------- Admin --------
	ListAllReservations(ctx context.Context, token string) ([]models.Reservation, error)

	AdminDeleteReservation(ctx context.Context, token string, id uint) error

	ListUsers(ctx context.Context, token string) ([]models.User, error)

	GetUser(ctx context.Context, token string, id uint) (*models.User, error)

	DeleteUser(ctx context.Context, token string, id uint) error
}
