package catalog

import "github.com/gin-gonic/gin"

// SetupCatalogRoutes configures the public catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	services := rg.Group("/services")
	{
		services.GET("", controller.ListServices)           // GET /api/v1/services
		services.GET("/directory", controller.ListDirectory) // GET /api/v1/services/directory
	}
}
