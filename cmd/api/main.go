package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/arena-manager/internal/app"
	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/arena-manager/internal/db"
	"github.com/BruksfildServices01/arena-manager/internal/events"
	infraRepo "github.com/BruksfildServices01/arena-manager/internal/infra/repository"
	"github.com/BruksfildServices01/arena-manager/internal/obs"
	"github.com/BruksfildServices01/arena-manager/internal/routes"
	"github.com/BruksfildServices01/arena-manager/internal/scheduler"
	"github.com/BruksfildServices01/arena-manager/internal/session"
	"github.com/BruksfildServices01/arena-manager/internal/timezone"
	ucCatalog "github.com/BruksfildServices01/arena-manager/internal/usecase/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/validators"
)

const serviceName = "arena-manager-bff"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := app.NewLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server_failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := validators.RegisterBindings(); err != nil {
		return err
	}

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	shutdownTracer, err := obs.InitTracer(ctx, cfg.OTLPEndpoint, serviceName, cfg.Env)
	if err != nil {
		return err
	}

	// ======================================================
	// CACHE
	// ======================================================
	var store cache.Store = cache.NewMemoryStore()
	var closeRedis func() error
	if cfg.RedisURL != "" {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		store = cache.NewRedisStore(rdb, "arena:")
		closeRedis = rdb.Close
		logger.Info("cache_redis_enabled")
	}
	coord := cache.NewCoordinator(store, cfg.CacheTTL, logger)
	coord.SetLoadTimeout(cfg.BackendTimeout)

	// ======================================================
	// EVENTOS (invalidação entre instâncias)
	// ======================================================
	var (
		amqpConn *amqp.Connection
		consumer *events.Consumer
	)
	if cfg.AMQPUrl != "" {
		origin := uuid.NewString()

		amqpConn, err = events.Dial(cfg.AMQPUrl)
		if err != nil {
			return err
		}
		publisher, err := events.NewPublisher(amqpConn, cfg.AMQPExchange, origin)
		if err != nil {
			return err
		}
		coord.SetBroadcaster(publisher)

		consumer, err = events.NewConsumer(amqpConn, cfg.AMQPExchange, origin, coord, logger)
		if err != nil {
			return err
		}
		logger.Info("cache_events_enabled", zap.String("origin", origin))
	}

	// ======================================================
	// BACKEND + SESSÃO
	// ======================================================
	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	repo := infraRepo.NewCachedRepository(client, coord)
	resolver := session.NewResolver(repo, coord, cfg.JWTSecret, logger)

	// ======================================================
	// AUDITORIA
	// ======================================================
	var (
		sink      audit.Sink = audit.NewZapSink(logger)
		auditLogs *infraRepo.AuditLogGormRepository
		closeDB   func() error
	)
	if cfg.DBUrl != "" {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		auditLogs = infraRepo.NewAuditLogGormRepository(db)
		sink = audit.New(auditLogs)
		closeDB = func() error { return dbpkg.Close(db) }
	}
	dispatcher := audit.NewDispatcher(sink, logger)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	deps := routes.Deps{
		Service:     serviceName,
		CORSOrigins: cfg.CORSOrigins,
		Location:    timezone.Location(cfg.Timezone),
		Repo:        repo,
		Cache:       coord,
		Resolver:    resolver,
		Audit:       dispatcher,
		Log:         logger,
	}
	if auditLogs != nil {
		deps.AuditLogs = auditLogs
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ======================================================
	// JOBS
	// ======================================================
	jobs, err := scheduler.New(logger)
	if err != nil {
		return err
	}
	warm := ucCatalog.NewWarmCatalog(repo, coord)
	if _, err := jobs.Every("catalog_warmup", cfg.CatalogWarmup, func(ctx context.Context) error {
		n, err := warm.Execute(ctx)
		if err == nil {
			logger.Debug("catalog_warmed", zap.Int("arenas", n))
		}
		return err
	}); err != nil {
		return err
	}

	// ======================================================
	// EXECUÇÃO
	// ======================================================
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server_listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if consumer != nil {
		g.Go(func() error {
			// sem consumer o cache segue valendo localmente até o TTL
			if err := consumer.Run(gctx); err != nil {
				logger.Error("cache_events_failed", zap.Error(err))
			}
			return nil
		})
	}

	jobs.Start()

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server_shutting_down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		errs = append(errs, srv.Shutdown(shutdownCtx))
		errs = append(errs, jobs.Stop())
		errs = append(errs, dispatcher.Close(shutdownCtx))
		if consumer != nil {
			errs = append(errs, consumer.Close())
		}
		if amqpConn != nil {
			errs = append(errs, amqpConn.Close())
		}
		if closeDB != nil {
			errs = append(errs, closeDB())
		}
		if closeRedis != nil {
			errs = append(errs, closeRedis())
		}
		errs = append(errs, shutdownTracer(shutdownCtx))
		return errors.Join(errs...)
	})

	return g.Wait()
}
