package bookings

import (
	"groomglow/internal/shared/config"
	"groomglow/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, cfg *config.Config, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		// Draft composition
		bookings.GET("/draft", controller.GetDraft)                          // GET    /api/v1/bookings/draft
		bookings.DELETE("/draft", controller.DiscardDraft)                   // DELETE /api/v1/bookings/draft
		bookings.PUT("/draft/date", controller.SetDate)                      // PUT    /api/v1/bookings/draft/date
		bookings.PUT("/draft/time", controller.SetTime)                      // PUT    /api/v1/bookings/draft/time
		bookings.POST("/draft/services/:id/toggle", controller.ToggleService) // POST   /api/v1/bookings/draft/services/:id/toggle

		// Submission and retrieval
		bookings.POST("/submit", controller.Submit)      // POST /api/v1/bookings/submit
		bookings.GET("/upcoming", controller.GetUpcoming) // GET  /api/v1/bookings/upcoming
	}
}

// Key Flow:
// 1. User adjusts a draft with PUT /draft/date, PUT /draft/time and
//    POST /draft/services/:id/toggle; the total recomputes on every toggle
// 2. User submits with POST /bookings/submit; the draft is discarded only
//    after the record is stored
// 3. User views the schedule with GET /bookings/upcoming; past and
//    malformed records never appear
