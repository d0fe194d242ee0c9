// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"groomglow/internal/auth"
	"groomglow/internal/bookings"
	"groomglow/internal/catalog"
	"groomglow/internal/identity"
	"groomglow/internal/notifications"
	"groomglow/internal/shared/config"
	"groomglow/internal/shared/database"
	"groomglow/internal/users"
	"groomglow/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	sessions *identity.Provider
	producer notifications.Producer // nil when Kafka is disabled

	bookingService bookings.Service
	bookingRepo    bookings.Repository
}

// NewRouter creates a new router instance. producer may be nil.
func NewRouter(cfg *config.Config, db *database.DB, sessions *identity.Provider, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		sessions: sessions,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupUserRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// BookingService exposes the booking service so main can close it on
// shutdown.
func (r *Router) BookingService() bookings.Service {
	return r.bookingService
}

// BookingRepository exposes the booking repository for the reminder
// sweep.
func (r *Router) BookingRepository() bookings.Repository {
	return r.bookingRepo
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "groomglow-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "groomglow-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.sessions, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupCatalogRoutes configures the public service catalog routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogController := catalog.NewController()
	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupUserRoutes configures profile routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userController := users.NewController(userRepo)

	users.SetupUserRoutes(rg, r.config, userController)
}

// setupBookingRoutes configures the booking workflow routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	r.bookingRepo = bookings.NewRepository(r.db.GetPostgreSQL())
	cacheService := cache.NewService(r.db.GetRedis())

	r.bookingService = bookings.NewService(
		r.bookingRepo,
		r.sessions,
		r.producer,
		cacheService,
		r.config.Redis.UpcomingTTL,
		nil,
	)
	bookingController := bookings.NewController(r.bookingService)

	bookings.SetupBookingRoutes(rg, r.config, bookingController)
}
