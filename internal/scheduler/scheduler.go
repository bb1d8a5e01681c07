package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyJobName = errors.New("job name is required")
	ErrBadInterval  = errors.New("job interval must be positive")
)

// Service embrulha o gocron com log de pânico por job.
type Service struct {
	scheduler gocron.Scheduler
	log       *zap.Logger
	stopOnce  sync.Once
	stopErr   error
}

func New(log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error("scheduler_job_panicked",
						zap.String("job_id", jobID.String()),
						zap.String("job_name", jobName),
						zap.Any("panic", recoverData),
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Service{scheduler: sched, log: log}, nil
}

func (s *Service) Start() {
	s.log.Info("scheduler_starting")
	s.scheduler.Start()
}

func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.log.Info("scheduler_stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// Every registra uma tarefa periódica que roda também logo na partida.
// Cada execução recebe um contexto limitado ao próprio intervalo.
func (s *Service) Every(name string, interval time.Duration, task func(ctx context.Context) error) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if interval <= 0 {
		return nil, ErrBadInterval
	}

	jobLog := s.log.With(zap.String("job_name", name), zap.Duration("interval", interval))

	wrapped := func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		start := time.Now()
		if err := task(ctx); err != nil {
			jobLog.Warn("scheduler_job_failed", zap.Error(err))
			return
		}
		jobLog.Debug("scheduler_job_completed", zap.Duration("took", time.Since(start)))
	}

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		jobLog.Error("scheduler_job_register_failed", zap.Error(err))
		return nil, err
	}
	jobLog.Info("scheduler_job_registered")
	return job, nil
}
