package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// Deps agrupa o que os use cases compartilham; montado uma vez no boot.
type Deps struct {
	Repo       *infraRepo.AppointmentGormRepository
	Notifier   *notification.Service
	Dispatcher *audit.Dispatcher
	Log        zerolog.Logger
}

func BuildDeps(db *gorm.DB, log zerolog.Logger) *Deps {
	return &Deps{
		Repo:       infraRepo.NewAppointmentGormRepository(db),
		Notifier:   notification.NewService(db, log),
		Dispatcher: audit.NewDispatcher(audit.New(db), log),
		Log:        log,
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps *Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(deps.Repo, deps.Notifier, deps.Dispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(deps.Repo, deps.Notifier, deps.Dispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(deps.Repo, deps.Notifier, deps.Dispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(deps.Repo, deps.Notifier, deps.Dispatcher, deps.Log)
	completeUC := ucAppointment.NewCompleteAppointment(deps.Repo, deps.Notifier, deps.Dispatcher)
	rateUC := ucAppointment.NewRateAppointment(deps.Repo, deps.Dispatcher)
	listUC := ucAppointment.NewListAppointments(deps.Repo)
	availabilityUC := ucAppointment.NewGetAvailability(deps.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createUC,
		updateUC,
		cancelUC,
		confirmUC,
		completeUC,
		rateUC,
		listUC,
		availabilityUC,
	)

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/working-hours", barberHandler.GetWorkingHours)
		api.GET("/barbers/:id/availability", appointmentHandler.Availability)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// APPOINTMENTS
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.POST("/appointments/:id/rate", appointmentHandler.Rate)

			// BARBEIROS / SERVIÇOS (gestão)
			secured.POST("/barbers", barberHandler.Create)
			secured.PUT("/me/working-hours", barberHandler.UpdateWorkingHours)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// NOTIFICAÇÕES
			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// AUDITORIA
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
