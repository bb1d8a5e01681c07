// Package testutil reúne dublês usados pelos testes dos casos de uso e handlers.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// FakeRepository guarda o "backend" em memória. Errs força erro por método
// (chave = nome do método) e Calls conta as chamadas.
type FakeRepository struct {
	mu sync.Mutex

	Arenas       []models.Arena
	Courts       map[uint][]models.Court         // por arena
	Schedules    map[uint][]models.Schedule      // por quadra
	Reservations map[string][]models.Reservation // por token
	Profiles     map[string]*models.User         // por token
	Users        []models.User
	Batch        json.RawMessage

	Errs  map[string]error
	Calls map[string]int

	nextID uint
}

var _ catalog.Repository = (*FakeRepository)(nil)

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Courts:       map[uint][]models.Court{},
		Schedules:    map[uint][]models.Schedule{},
		Reservations: map[string][]models.Reservation{},
		Profiles:     map[string]*models.User{},
		Errs:         map[string]error{},
		Calls:        map[string]int{},
		nextID:       1000,
	}
}

// NotFound simula a resposta 404 do backend.
func NotFound(op string) error {
	return &backend.Error{Op: op, Kind: backend.KindNotFound, Status: http.StatusNotFound, Message: "Não encontrado"}
}

// Unauthorized simula a resposta 401 do backend.
func Unauthorized(op string) error {
	return &backend.Error{Op: op, Kind: backend.KindUnauthorized, Status: http.StatusUnauthorized, Message: "Could not validate credentials"}
}

func (f *FakeRepository) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *FakeRepository) enter(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[name]++
	return f.Errs[name]
}

func (f *FakeRepository) id() uint {
	f.nextID++
	return f.nextID
}

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func (f *FakeRepository) ListArenas(ctx context.Context) ([]models.Arena, error) {
	if err := f.enter("ListArenas"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Arena(nil), f.Arenas...), nil
}

func (f *FakeRepository) ListCourtsByArena(ctx context.Context, arenaID uint) ([]models.Court, error) {
	if err := f.enter("ListCourtsByArena"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Court(nil), f.Courts[arenaID]...), nil
}

func (f *FakeRepository) ListSchedulesByCourt(ctx context.Context, courtID uint) ([]models.Schedule, error) {
	if err := f.enter("ListSchedulesByCourt"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Schedule(nil), f.Schedules[courtID]...), nil
}

// --------------------------------------------------
// Sessão
// --------------------------------------------------

func (f *FakeRepository) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	if err := f.enter("Login"); err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: "token-" + username, TokenType: "bearer"}, nil
}

func (f *FakeRepository) Register(ctx context.Context, req dto.RegisterRequest) error {
	if err := f.enter("Register"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Profiles["token-"+req.Username] = &models.User{
		ID:       f.id(),
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Role:     models.RoleClient,
	}
	return nil
}

func (f *FakeRepository) Me(ctx context.Context, token string) (*models.User, error) {
	if err := f.enter("Me"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Profiles[token]
	if !ok {
		return nil, Unauthorized("me")
	}
	cp := *u
	return &cp, nil
}

// --------------------------------------------------
// Reservas
// --------------------------------------------------

func (f *FakeRepository) ListReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	if err := f.enter("ListReservations"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Reservation(nil), f.Reservations[token]...), nil
}

func (f *FakeRepository) CreateReservation(ctx context.Context, token string, scheduleID uint) (*models.Reservation, error) {
	if err := f.enter("CreateReservation"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r := models.Reservation{ID: f.id(), ScheduleID: scheduleID, Status: models.ReservationScheduled}
	f.Reservations[token] = append(f.Reservations[token], r)
	return &r, nil
}

func (f *FakeRepository) DeleteReservation(ctx context.Context, token string, id uint) error {
	if err := f.enter("DeleteReservation"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.Reservations[token]
	for i, r := range list {
		if r.ID == id {
			f.Reservations[token] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return NotFound("delete_reservation")
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (f *FakeRepository) ListOwnerArenas(ctx context.Context, token string) ([]models.Arena, error) {
	if err := f.enter("ListOwnerArenas"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	owner := f.Profiles[token]
	var out []models.Arena
	for _, a := range f.Arenas {
		if owner != nil && a.OwnerID == owner.ID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *FakeRepository) CreateArena(ctx context.Context, token string, req dto.ArenaRequest) (*models.Arena, error) {
	if err := f.enter("CreateArena"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a := models.Arena{ID: f.id(), Name: req.Name, City: req.City, Address: req.Address}
	if owner := f.Profiles[token]; owner != nil {
		a.OwnerID = owner.ID
		if owner.Role == models.RoleClient {
			owner.Role = models.RoleOwner
		}
	}
	f.Arenas = append(f.Arenas, a)
	return &a, nil
}

func (f *FakeRepository) UpdateArena(ctx context.Context, token string, id uint, req dto.ArenaUpdate) (*models.Arena, error) {
	if err := f.enter("UpdateArena"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Arenas {
		a := &f.Arenas[i]
		if a.ID != id {
			continue
		}
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.City != nil {
			a.City = *req.City
		}
		if req.Address != nil {
			a.Address = *req.Address
		}
		cp := *a
		return &cp, nil
	}
	return nil, NotFound("update_arena")
}

func (f *FakeRepository) DeleteArena(ctx context.Context, token string, id uint) error {
	if err := f.enter("DeleteArena"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.Arenas {
		if a.ID == id {
			f.Arenas = append(f.Arenas[:i:i], f.Arenas[i+1:]...)
			delete(f.Courts, id)
			return nil
		}
	}
	return NotFound("delete_arena")
}

func (f *FakeRepository) ListOwnerCourts(ctx context.Context, token string, arenaID uint) ([]models.Court, error) {
	if err := f.enter("ListOwnerCourts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Court(nil), f.Courts[arenaID]...), nil
}

func (f *FakeRepository) CreateCourt(ctx context.Context, token string, req dto.CourtRequest) (*models.Court, error) {
	if err := f.enter("CreateCourt"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Court{
		ID:           f.id(),
		ArenaID:      req.ArenaID,
		Name:         req.Name,
		SportsType:   req.SportsType,
		PricePerHour: req.PricePerHour,
	}
	f.Courts[req.ArenaID] = append(f.Courts[req.ArenaID], c)
	return &c, nil
}

func (f *FakeRepository) findCourt(id uint) *models.Court {
	for arenaID := range f.Courts {
		for i := range f.Courts[arenaID] {
			if f.Courts[arenaID][i].ID == id {
				return &f.Courts[arenaID][i]
			}
		}
	}
	return nil
}

func (f *FakeRepository) UpdateCourt(ctx context.Context, token string, id uint, req dto.CourtUpdate) (*models.Court, error) {
	if err := f.enter("UpdateCourt"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.findCourt(id)
	if c == nil {
		return nil, NotFound("update_court")
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.SportsType != nil {
		c.SportsType = *req.SportsType
	}
	if req.PricePerHour != nil {
		c.PricePerHour = *req.PricePerHour
	}
	cp := *c
	return &cp, nil
}

func (f *FakeRepository) DeleteCourt(ctx context.Context, token string, id uint) error {
	if err := f.enter("DeleteCourt"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for arenaID, list := range f.Courts {
		for i, c := range list {
			if c.ID == id {
				f.Courts[arenaID] = append(list[:i:i], list[i+1:]...)
				delete(f.Schedules, id)
				return nil
			}
		}
	}
	return NotFound("delete_court")
}

func (f *FakeRepository) CreateSchedule(ctx context.Context, token string, req dto.ScheduleRequest) (*models.Schedule, error) {
	if err := f.enter("CreateSchedule"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s := models.Schedule{
		ID:          f.id(),
		CourtID:     req.CourtID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
	}
	f.Schedules[req.CourtID] = append(f.Schedules[req.CourtID], s)
	return &s, nil
}

func (f *FakeRepository) UpdateSchedule(ctx context.Context, token string, id uint, req dto.ScheduleUpdate) (*models.Schedule, error) {
	if err := f.enter("UpdateSchedule"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for courtID := range f.Schedules {
		for i := range f.Schedules[courtID] {
			s := &f.Schedules[courtID][i]
			if s.ID != id {
				continue
			}
			if req.Date != nil {
				s.Date = *req.Date
			}
			if req.StartTime != nil {
				s.StartTime = *req.StartTime
			}
			if req.EndTime != nil {
				s.EndTime = *req.EndTime
			}
			cp := *s
			return &cp, nil
		}
	}
	return nil, NotFound("update_schedule")
}

func (f *FakeRepository) DeleteSchedule(ctx context.Context, token string, id uint) error {
	if err := f.enter("DeleteSchedule"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for courtID, list := range f.Schedules {
		for i, s := range list {
			if s.ID == id {
				f.Schedules[courtID] = append(list[:i:i], list[i+1:]...)
				return nil
			}
		}
	}
	return NotFound("delete_schedule")
}

func (f *FakeRepository) CreateScheduleBatch(ctx context.Context, token string, req dto.ScheduleBatchRequest) (json.RawMessage, error) {
	if err := f.enter("CreateScheduleBatch"); err != nil {
		return nil, err
	}
	if f.Batch != nil {
		return f.Batch, nil
	}
	return json.RawMessage(fmt.Sprintf(`{"court_id":%d}`, req.CourtID)), nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (f *FakeRepository) ListAllReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	if err := f.enter("ListAllReservations"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, list := range f.Reservations {
		out = append(out, list...)
	}
	return out, nil
}

func (f *FakeRepository) AdminDeleteReservation(ctx context.Context, token string, id uint) error {
	if err := f.enter("AdminDeleteReservation"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for tok, list := range f.Reservations {
		for i, r := range list {
			if r.ID == id {
				f.Reservations[tok] = append(list[:i:i], list[i+1:]...)
				return nil
			}
		}
	}
	return NotFound("admin_delete_reservation")
}

func (f *FakeRepository) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	if err := f.enter("ListUsers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.Users...), nil
}

func (f *FakeRepository) GetUser(ctx context.Context, token string, id uint) (*models.User, error) {
	if err := f.enter("GetUser"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.Users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, NotFound("admin_get_user")
}

func (f *FakeRepository) DeleteUser(ctx context.Context, token string, id uint) error {
	if err := f.enter("DeleteUser"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.Users {
		if u.ID == id {
			f.Users = append(f.Users[:i:i], f.Users[i+1:]...)
			return nil
		}
	}
	return NotFound("admin_delete_user")
}
