package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/handlers"
	"github.com/BruksfildServices01/arena-manager/internal/middleware"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/session"
	ucAdmin "github.com/BruksfildServices01/arena-manager/internal/usecase/admin"
	ucAuth "github.com/BruksfildServices01/arena-manager/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/arena-manager/internal/usecase/catalog"
	ucOwner "github.com/BruksfildServices01/arena-manager/internal/usecase/owner"
	ucReservation "github.com/BruksfildServices01/arena-manager/internal/usecase/reservation"
)

// Deps são os singletons montados no main.
type Deps struct {
	Service     string
	CORSOrigins []string
	Location    *time.Location

	Repo      domain.Repository
	Cache     *cache.Coordinator
	Resolver  *session.Resolver
	Audit     *audit.Dispatcher
	AuditLogs handlers.AuditLogLister
	Log       *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Tracing(d.Service),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(d.CORSOrigins),
		middleware.SessionMiddleware(d.Resolver),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	listArenasUC := ucCatalog.NewListArenas(d.Repo)
	availabilityUC := ucCatalog.NewGetArenaAvailability(d.Repo, d.Location, d.Log)
	courtSchedulesUC := ucCatalog.NewCourtSchedules(d.Repo)

	createReservationUC := ucReservation.NewCreateReservation(d.Repo, d.Cache, d.Audit)
	deleteReservationUC := ucReservation.NewDeleteReservation(d.Repo, d.Cache, d.Audit)
	listReservationsUC := ucReservation.NewListMyReservations(d.Repo)

	authSvc := ucAuth.NewService(d.Repo, d.Resolver, d.Audit)
	ownerSvc := ucOwner.NewService(d.Repo, d.Cache, d.Audit)
	adminSvc := ucAdmin.NewService(d.Repo, d.Cache, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(listArenasUC, availabilityUC, courtSchedulesUC, d.Location)
	authHandler := handlers.NewAuthHandler(authSvc)
	meHandler := handlers.NewMeHandler()
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		deleteReservationUC,
		listReservationsUC,
	)
	ownerHandler := handlers.NewOwnerHandler(ownerSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/date-pills", publicHandler.DatePills)
			publicAPI.GET("/arenas", publicHandler.ListArenas)
			publicAPI.GET("/arenas/:id/availability", publicHandler.Availability)
			publicAPI.GET("/courts/:id/schedules", publicHandler.CourtSchedules)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/login", middleware.RequireAnonymous(), authHandler.Login)
			authAPI.POST("/register", middleware.RequireAnonymous(), authHandler.Register)
			authAPI.POST("/logout", authHandler.Logout)
			authAPI.GET("/session", authHandler.Session)
		}

		// ------------------------------
		// LOGADO (qualquer papel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireAuth())
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/reservations", reservationHandler.List)
			secured.POST("/reservations", reservationHandler.Create)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			// a primeira arena é o que promove um client a owner
			secured.POST("/owner/arenas", ownerHandler.CreateArena)
		}

		// ------------------------------
		// OWNER / ADMIN
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(
			middleware.RequireAuth(),
			middleware.RequireRole(models.RoleOwner, models.RoleAdmin),
		)
		{
			owner.GET("/arenas", ownerHandler.ListArenas)
			owner.PUT("/arenas/:id", ownerHandler.UpdateArena)
			owner.DELETE("/arenas/:id", ownerHandler.DeleteArena)
			owner.GET("/arenas/:id/courts", ownerHandler.ListCourts)

			owner.POST("/courts", ownerHandler.CreateCourt)
			owner.PUT("/courts/:id", ownerHandler.UpdateCourt)
			owner.DELETE("/courts/:id", ownerHandler.DeleteCourt)
			owner.GET("/courts/:id/schedules", ownerHandler.CourtSchedules)

			owner.POST("/schedules", ownerHandler.CreateSchedule)
			owner.PUT("/schedules/:id", ownerHandler.UpdateSchedule)
			owner.DELETE("/schedules/:id", ownerHandler.DeleteSchedule)
			owner.POST("/schedules/batch", ownerHandler.CreateBatch)
			owner.POST("/schedules/batch/preview", ownerHandler.PreviewBatch)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(
			middleware.RequireAuth(),
			middleware.RequireRole(models.RoleAdmin),
		)
		{
			admin.GET("/reservations", adminHandler.Reservations)
			admin.DELETE("/reservations/:id", adminHandler.DeleteReservation)

			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
