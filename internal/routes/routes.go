package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ultramind-solutions/agendepro/internal/audit"
	"github.com/ultramind-solutions/agendepro/internal/cache"
	"github.com/ultramind-solutions/agendepro/internal/config"
	"github.com/ultramind-solutions/agendepro/internal/handlers"
	"github.com/ultramind-solutions/agendepro/internal/infra/repository"
	"github.com/ultramind-solutions/agendepro/internal/middleware"
	"github.com/ultramind-solutions/agendepro/internal/notify"
	"github.com/ultramind-solutions/agendepro/internal/storage"
	usecase "github.com/ultramind-solutions/agendepro/internal/usecase/appointment"
)

// RegisterRoutes monta repositórios, casos de uso e handlers e pendura
// tudo no engine. Toda a composição do serviço acontece aqui.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	pageCache *cache.Cache,
	log zerolog.Logger,
) {
	repo := repository.NewAppointmentGormRepository(db)

	auditDisp := audit.NewDispatcher(audit.New(db), log)
	notifier := notify.NewWhatsApp()
	logos := storage.NewLogoStore(cfg, log)

	availabilityUC := usecase.NewGetAvailability(repo)
	createPublicUC := usecase.NewCreatePublicAppointment(repo, notifier, auditDisp, log)
	createPrivateUC := usecase.NewCreatePrivateAppointment(repo, auditDisp)
	confirmUC := usecase.NewConfirmAppointment(repo, auditDisp)
	cancelUC := usecase.NewCancelAppointment(repo, auditDisp)
	completeUC := usecase.NewCompleteAppointment(repo, auditDisp)
	byDateUC := usecase.NewListAppointmentsByDate(repo)
	byMonthUC := usecase.NewListAppointmentsByMonth(repo)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, pageCache, logos)
	settingsHandler := handlers.NewSettingsHandler(db, pageCache)
	serviceHandler := handlers.NewServiceHandler(db, pageCache)
	clientHandler := handlers.NewClientHandler(db)
	auditHandler := handlers.NewAuditHandler(db)
	publicHandler := handlers.NewPublicHandler(repo, pageCache, availabilityUC, createPublicUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createPrivateUC,
		confirmUC,
		cancelUC,
		completeUC,
		byDateUC,
		byMonthUC,
		notifier,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// página pública de agendamento
	r.GET("/agendar/:slug", publicHandler.GetBookingPage)

	public := r.Group("/api/public/:slug")
	{
		public.GET("", publicHandler.GetBookingPage)
		public.GET("/services", publicHandler.ListServices)
		public.GET("/availability", publicHandler.GetAvailability)
		public.POST("/appointments", publicHandler.CreateAppointment)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	me := r.Group("/api/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.GET("", meHandler.GetMe)

		me.GET("/profile", businessHandler.GetProfile)
		me.PATCH("/profile", businessHandler.UpdateProfile)
		me.POST("/profile/logo", businessHandler.UploadLogo)

		me.GET("/settings", settingsHandler.GetSettings)
		me.PUT("/settings", settingsHandler.UpdateSettings)

		me.GET("/services", serviceHandler.ListServices)
		me.POST("/services", serviceHandler.CreateService)
		me.PATCH("/services/:id", serviceHandler.UpdateService)

		me.GET("/clients", clientHandler.ListClients)
		me.PATCH("/clients/:id", clientHandler.UpdateClient)

		me.GET("/appointments", appointmentHandler.ListAppointments)
		me.GET("/appointments/month", appointmentHandler.ListAppointmentsByMonth)
		me.POST("/appointments", appointmentHandler.CreateAppointment)
		me.PATCH("/appointments/:id/confirm", appointmentHandler.ConfirmAppointment)
		me.PATCH("/appointments/:id/cancel", appointmentHandler.CancelAppointment)
		me.PATCH("/appointments/:id/complete", appointmentHandler.CompleteAppointment)
		me.POST("/appointments/:id/notify", appointmentHandler.NotifyAppointment)

		me.GET("/audit-logs", auditHandler.ListAuditLogs)
	}
}
