package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

// fanOutLimit segura quantas listagens de horários vão ao backend ao mesmo tempo.
const fanOutLimit = 8

type AvailabilityInput struct {
	ArenaID  uint
	DayIndex int
	Viewer   usecase.Viewer
}

type Availability struct {
	Pills        []domain.DatePill                   `json:"date_pills"`
	SelectedDay  int                                 `json:"selected_day"`
	SelectedDate string                              `json:"selected_date"`
	Courts       []models.Court                      `json:"courts"`
	Schedules    map[uint][]domain.ScheduleWithCourt `json:"schedules"`
}

type GetArenaAvailability struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

func NewGetArenaAvailability(
	repo domain.Repository,
	loc *time.Location,
	log *zap.Logger,
) *GetArenaAvailability {
	return &GetArenaAvailability{
		repo: repo,
		loc:  loc,
		now:  time.Now,
		log:  log,
	}
}

func (uc *GetArenaAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	pills := domain.DatePills(uc.now().In(uc.loc))
	selected, ok := domain.SelectedISO(pills, in.DayIndex)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_day_index")
	}

	courts, err := uc.repo.ListCourtsByArena(ctx, in.ArenaID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Fan-out: horários por quadra + reservas do usuário
	// --------------------------------------------------

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)

	perCourt := make([][]models.Schedule, len(courts))
	for i, court := range courts {
		g.Go(func() error {
			list, err := uc.repo.ListSchedulesByCourt(gctx, court.ID)
			if err != nil {
				return err
			}
			perCourt[i] = list
			return nil
		})
	}

	var reservations []models.Reservation
	if in.Viewer.Authenticated() {
		g.Go(func() error {
			list, err := uc.repo.ListReservations(gctx, in.Viewer.Token)
			if err != nil {
				// sem as reservas a tela ainda funciona; o backend recusa duplicidade
				uc.log.Warn("availability_reservations_failed",
					zap.Uint("arena_id", in.ArenaID),
					zap.Error(err),
				)
				return nil
			}
			reservations = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// fan-in na ordem das quadras
	var schedules []models.Schedule
	for _, list := range perCourt {
		schedules = append(schedules, list...)
	}

	return &Availability{
		Pills:        pills,
		SelectedDay:  in.DayIndex,
		SelectedDate: selected,
		Courts:       courts,
		Schedules: domain.Project(domain.ProjectionInput{
			Schedules:     schedules,
			Courts:        courts,
			Reserved:      domain.ReservedScheduleIDs(reservations),
			SelectedIndex: in.DayIndex,
			Pills:         pills,
		}),
	}, nil
}
