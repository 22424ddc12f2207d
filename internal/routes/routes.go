package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	"github.com/BruksfildServices01/consult-scheduler/internal/cache"
	"github.com/BruksfildServices01/consult-scheduler/internal/config"
	"github.com/BruksfildServices01/consult-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/consult-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/consult-scheduler/internal/locking"
	"github.com/BruksfildServices01/consult-scheduler/internal/messaging"
	"github.com/BruksfildServices01/consult-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
	ucAvailability "github.com/BruksfildServices01/consult-scheduler/internal/usecase/availability"
	ucClient "github.com/BruksfildServices01/consult-scheduler/internal/usecase/client"
	ucConsultant "github.com/BruksfildServices01/consult-scheduler/internal/usecase/consultant"
	ucReview "github.com/BruksfildServices01/consult-scheduler/internal/usecase/review"
	ucSession "github.com/BruksfildServices01/consult-scheduler/internal/usecase/session"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	consultantRepo := infraRepo.NewConsultantGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	sessionRepo := infraRepo.NewSessionGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	feedCache := cache.NewConsultantCache(cfg)

	// Compartilhado por disponibilidade e avaliações: serializa tudo
	// que mexe no mesmo consultor
	locks := locking.NewKeyedMutex()

	// ======================================================
	// 🧠 USE CASES — CONSULTANTS
	// ======================================================
	createConsultantUC := ucConsultant.NewCreateConsultant(
		consultantRepo,
		userRepo,
		auditDispatcher,
	)

	updateConsultantUC := ucConsultant.NewUpdateConsultant(
		consultantRepo,
		feedCache,
		auditDispatcher,
	)

	verifyConsultantUC := ucConsultant.NewVerifyConsultant(
		consultantRepo,
		feedCache,
		auditDispatcher,
	)

	removeConsultantUC := ucConsultant.NewRemoveConsultant(
		consultantRepo,
		feedCache,
		auditDispatcher,
	)

	listConsultantsUC := ucConsultant.NewListConsultants(
		consultantRepo,
		feedCache,
	)

	consultantQueriesUC := ucConsultant.NewConsultantQueries(consultantRepo)

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY
	// ======================================================
	createAvailabilityUC := ucAvailability.NewCreateAvailability(
		availabilityRepo,
		consultantRepo,
		locks,
		auditDispatcher,
	)

	updateAvailabilityUC := ucAvailability.NewUpdateAvailability(
		availabilityRepo,
		locks,
		auditDispatcher,
	)

	removeAvailabilityUC := ucAvailability.NewRemoveAvailability(
		availabilityRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAvailability.NewGetAvailability(availabilityRepo)

	listAvailabilitiesUC := ucAvailability.NewListAvailabilities(
		availabilityRepo,
		consultantRepo,
	)

	listAvailableForDayUC := ucAvailability.NewListAvailableForDay(
		availabilityRepo,
		consultantRepo,
	)

	// ======================================================
	// 🧠 USE CASES — SESSIONS
	// ======================================================
	createSessionUC := ucSession.NewCreateSession(
		sessionRepo,
		consultantRepo,
		clientRepo,
		auditDispatcher,
	)

	updateSessionUC := ucSession.NewUpdateSession(
		sessionRepo,
		auditDispatcher,
	)

	updateSessionStatusUC := ucSession.NewUpdateSessionStatus(
		sessionRepo,
		auditDispatcher,
	)

	removeSessionUC := ucSession.NewRemoveSession(
		sessionRepo,
		auditDispatcher,
	)

	sessionQueriesUC := ucSession.NewSessionQueries(sessionRepo)

	// ======================================================
	// 🧠 USE CASES — REVIEWS
	// ======================================================
	ratingAggregator := ucReview.NewRatingAggregator(consultantRepo, locks)

	createReviewUC := ucReview.NewCreateReview(
		reviewRepo,
		sessionRepo,
		consultantRepo,
		clientRepo,
		ratingAggregator,
		locks,
		auditDispatcher,
	)

	removeReviewUC := ucReview.NewRemoveReview(
		reviewRepo,
		auditDispatcher,
	)

	reviewQueriesUC := ucReview.NewReviewQueries(reviewRepo)

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	createClientUC := ucClient.NewCreateClient(
		clientRepo,
		userRepo,
		auditDispatcher,
	)

	clientQueriesUC := ucClient.NewClientQueries(clientRepo)

	// ======================================================
	// 📨 MESSAGING
	// ======================================================
	messagingService := messaging.NewService(
		messaging.NewTelegramMessenger(cfg.TelegramBotToken),
		messaging.NewWhatsAppMessenger(cfg.WhatsAppToken),
		sessionRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	consultantHandler := handlers.NewConsultantHandler(
		createConsultantUC,
		updateConsultantUC,
		verifyConsultantUC,
		removeConsultantUC,
		listConsultantsUC,
		consultantQueriesUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		createAvailabilityUC,
		updateAvailabilityUC,
		removeAvailabilityUC,
		getAvailabilityUC,
		listAvailabilitiesUC,
		listAvailableForDayUC,
	)

	sessionHandler := handlers.NewSessionHandler(
		createSessionUC,
		updateSessionUC,
		updateSessionStatusUC,
		removeSessionUC,
		sessionQueriesUC,
	)

	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		removeReviewUC,
		reviewQueriesUC,
	)

	clientHandler := handlers.NewClientHandler(
		createClientUC,
		clientQueriesUC,
	)

	adminHandler := handlers.NewAdminHandler(db)
	messagingHandler := handlers.NewMessagingHandler(messagingService)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/consultants", consultantHandler.List)
		api.GET("/consultants/:id", consultantHandler.Get)
		api.GET("/consultants/:id/reviews", reviewHandler.ListByConsultant)
		api.GET("/consultants/:id/availabilities", availabilityHandler.ListByConsultant)
		api.GET("/consultants/:id/available-slots", availabilityHandler.ListAvailableForDay)
		api.GET("/availabilities/:id", availabilityHandler.Get)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PROFILES
			// ------------------------------
			secured.POST("/consultants", consultantHandler.Create)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)

			// ------------------------------
			// CONSULTANTS
			// ------------------------------
			consultantOnly := secured.Group("/")
			consultantOnly.Use(middleware.RequireRoles(models.RoleConsultant, models.RoleAdmin))
			{
				consultantOnly.PATCH("/consultants/:id", consultantHandler.Update)
				consultantOnly.POST("/consultants/:id/availabilities", availabilityHandler.Create)
				consultantOnly.PATCH("/availabilities/:id", availabilityHandler.Update)
				consultantOnly.DELETE("/availabilities/:id", availabilityHandler.Delete)
				consultantOnly.GET("/consultants/:id/sessions", sessionHandler.ListByConsultant)
			}

			// ------------------------------
			// SESSIONS
			// ------------------------------
			secured.POST("/sessions", sessionHandler.Create)
			secured.GET("/sessions/:id", sessionHandler.Get)
			secured.PATCH("/sessions/:id", sessionHandler.Update)
			secured.PATCH("/sessions/:id/status", sessionHandler.UpdateStatus)
			secured.GET("/clients/:id/sessions", sessionHandler.ListByClient)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews/:id", reviewHandler.Get)

			// ------------------------------
			// MESSAGING
			// ------------------------------
			secured.POST("/messages", messagingHandler.Send)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/dashboard", adminHandler.Dashboard)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)

				admin.GET("/consultants/pending", consultantHandler.ListPending)
				admin.PATCH("/consultants/:id/verify", consultantHandler.Verify)
				admin.DELETE("/consultants/:id", consultantHandler.Delete)

				admin.GET("/clients", clientHandler.List)
				admin.GET("/sessions", sessionHandler.List)
				admin.DELETE("/sessions/:id", sessionHandler.Delete)

				admin.GET("/reviews", reviewHandler.List)
				admin.DELETE("/reviews/:id", reviewHandler.Delete)
			}
		}
	}
}
