package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/audit"
	"github.com/washapp/carwash-api/internal/config"
	"github.com/washapp/carwash-api/internal/handlers"
	infraRepo "github.com/washapp/carwash-api/internal/infra/repository"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/storage"
	ucBooking "github.com/washapp/carwash-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	store *storage.ImageStore,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db, store)
	serviceHandler := handlers.NewServiceHandler(db)
	servicePriceHandler := handlers.NewServicePriceHandler(db)
	bookingHandler := handlers.NewBookingHandler(db, createBookingUC, auditDispatcher)
	transactionHandler := handlers.NewTransactionHandler(db, store, auditDispatcher)
	testimonialHandler := handlers.NewTestimonialHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authn := middleware.Authenticate(db, cfg)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, cfg.RateLimitPerMinute))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// CATÁLOGO (leitura pública)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/service-prices", servicePriceHandler.List)
		api.GET("/service-prices/:id", servicePriceHandler.Get)

		api.GET("/testimonials", testimonialHandler.List)

		// ------------------------------
		// ROTAS AUTENTICADAS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(authn)
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/profile", profileHandler.Get)
			secured.POST("/profile", profileHandler.Create)
			secured.PATCH("/profile", profileHandler.Update)

			// mutação do catálogo é admin-only
			secured.POST("/services", adminOnly, serviceHandler.Create)
			secured.PUT("/services/:id", adminOnly, serviceHandler.Update)
			secured.DELETE("/services/:id", adminOnly, serviceHandler.Delete)

			secured.POST("/service-prices", adminOnly, servicePriceHandler.Create)
			secured.PUT("/service-prices/:id", adminOnly, servicePriceHandler.Update)
			secured.DELETE("/service-prices/:id", adminOnly, servicePriceHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PUT("/bookings/:id", bookingHandler.Update)
			secured.PATCH("/bookings/:id/status", adminOnly, bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// TRANSACTIONS
			// ------------------------------
			secured.POST("/transactions", transactionHandler.Create)
			secured.GET("/transactions", transactionHandler.List)
			secured.GET("/transactions/:id", transactionHandler.Get)
			secured.PATCH("/transactions/:id", transactionHandler.Update)
			secured.PATCH("/transactions/:id/payment-status", adminOnly, transactionHandler.UpdatePaymentStatus)
			secured.DELETE("/transactions/:id", transactionHandler.Delete)

			// ------------------------------
			// TESTIMONIALS
			// ------------------------------
			secured.POST("/testimonials", testimonialHandler.Create)
			secured.PATCH("/testimonials", testimonialHandler.Update)
			secured.DELETE("/testimonials", testimonialHandler.Delete)

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
