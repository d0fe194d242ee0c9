package users

import (
	"groomglow/internal/shared/config"
	"groomglow/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures profile routes
func SetupUserRoutes(rg *gin.RouterGroup, cfg *config.Config, controller *Controller) {
	users := rg.Group("/users")
	users.Use(middleware.JWTAuthWithConfig(cfg))
	{
		users.GET("/profile", controller.GetProfile) // GET /api/v1/users/profile
	}
}
