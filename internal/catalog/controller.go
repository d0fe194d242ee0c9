package catalog

import (
	"net/http"

	"groomglow/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// ListServices handles GET /api/v1/services
func (c *Controller) ListServices(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Services retrieved successfully", gin.H{
		"services": Services(),
		"count":    len(services),
	}, nil)
}

// ListDirectory handles GET /api/v1/services/directory
func (c *Controller) ListDirectory(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Service directory retrieved successfully", gin.H{
		"services": Directory(),
		"count":    len(directory),
	}, nil)
}
