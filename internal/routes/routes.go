package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/audit"
	"github.com/BruksfildServices01/barber-saas/internal/cache"
	"github.com/BruksfildServices01/barber-saas/internal/config"
	"github.com/BruksfildServices01/barber-saas/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-saas/internal/infra/repository"
	"github.com/BruksfildServices01/barber-saas/internal/middleware"
	"github.com/BruksfildServices01/barber-saas/internal/storage"
	"github.com/BruksfildServices01/barber-saas/internal/token"
	ucBooking "github.com/BruksfildServices01/barber-saas/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	credStore := infraRepo.NewCredentialsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	shopCache := cache.New(cfg)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(credStore, cfg)
	publicHandler := handlers.NewPublicHandler(db, shopCache)

	shopHandler := handlers.NewShopHandler(db, shopCache, uploader)
	serviceHandler := handlers.NewServiceHandler(db, uploader)
	barberHandler := handlers.NewBarberHandler(db)
	cashEntryHandler := handlers.NewCashEntryHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		deleteBookingUC,
	)

	adminHandler := handlers.NewAdminHandler(db, shopCache, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbershops", publicHandler.ListShops)
			publicAPI.GET("/barbershops/:slug", publicHandler.GetShop)
			publicAPI.GET("/barbershops/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/barbershops/:slug/barbers", publicHandler.ListBarbers)

			publicAPI.POST("/bookings", bookingHandler.Create)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (barbearia)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		shopOnly := secured.Group("/me")
		shopOnly.Use(middleware.RequireRole(token.RoleShop))
		{
			shopOnly.GET("", shopHandler.GetMe)
			shopOnly.PATCH("/barbershop", shopHandler.UpdateMe)
			shopOnly.POST("/barbershop/logo", shopHandler.UploadLogo)

			shopOnly.GET("/hours", shopHandler.GetHours)
			shopOnly.PUT("/hours", shopHandler.UpdateHours)

			shopOnly.GET("/services", serviceHandler.List)
			shopOnly.POST("/services", serviceHandler.Create)
			shopOnly.PATCH("/services/:id", serviceHandler.Update)
			shopOnly.DELETE("/services/:id", serviceHandler.Delete)
			shopOnly.POST("/services/:id/image", serviceHandler.UploadImage)

			shopOnly.GET("/barbers", barberHandler.List)
			shopOnly.POST("/barbers", barberHandler.Create)
			shopOnly.PATCH("/barbers/:id", barberHandler.Update)
			shopOnly.DELETE("/barbers/:id", barberHandler.Delete)

			shopOnly.GET("/bookings", bookingHandler.List)
			shopOnly.DELETE("/bookings/:id", bookingHandler.Delete)

			shopOnly.GET("/cash-entries", cashEntryHandler.List)
			shopOnly.POST("/cash-entries", cashEntryHandler.Create)
			shopOnly.DELETE("/cash-entries/:id", cashEntryHandler.Delete)

			shopOnly.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// 🛠 API ADMIN (plataforma)
		// ------------------------------
		adminOnly := secured.Group("/admin")
		adminOnly.Use(middleware.RequireRole(token.RoleAdmin))
		{
			adminOnly.GET("/barbershops", adminHandler.ListShops)
			adminOnly.POST("/barbershops", adminHandler.CreateShop)
			adminOnly.POST("/barbershops/:id/toggle-status", adminHandler.ToggleStatus)
			adminOnly.DELETE("/barbershops/:id", adminHandler.DeleteShop)
		}
	}
}
