package bookings

import (
	"errors"
	"net/http"
	"time"

	"groomglow/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// currentUserID pulls the authenticated user out of the JWT context
// (set by middleware).
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, false
	}

	return userID, true
}

// SetDate handles PUT /api/v1/bookings/draft/date
func (c *Controller) SetDate(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req SetDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	day, err := time.ParseInLocation(DateLayout, req.Date, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	draft, err := c.service.SetDate(ctx.Request.Context(), userID, day)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update draft"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Draft date updated",
		"data":    draft,
	})
}

// SetTime handles PUT /api/v1/bookings/draft/time
func (c *Controller) SetTime(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req SetTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	clock, err := time.ParseInLocation(TimeLayout, req.Time, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time, expected H:MM AM/PM"})
		return
	}

	draft, err := c.service.SetTime(ctx.Request.Context(), userID, clock)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update draft"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Draft time updated",
		"data":    draft,
	})
}

// ToggleService handles POST /api/v1/bookings/draft/services/:id/toggle
func (c *Controller) ToggleService(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	serviceID := ctx.Param("id")

	draft, err := c.service.ToggleService(ctx.Request.Context(), userID, serviceID)
	if err != nil {
		if errors.Is(err, ErrInvalidService) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service id"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update draft"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Draft services updated",
		"data":    draft,
	})
}

// GetDraft handles GET /api/v1/bookings/draft
func (c *Controller) GetDraft(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	draft, err := c.service.GetDraft(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch draft"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Draft retrieved successfully",
		"data":    draft,
	})
}

// DiscardDraft handles DELETE /api/v1/bookings/draft
func (c *Controller) DiscardDraft(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	c.service.DiscardDraft(userID)

	ctx.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

// Submit handles POST /api/v1/bookings/submit
func (c *Controller) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	confirmation, err := c.service.Submit(ctx.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptySelection):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Select at least one service before submitting"})
		case errors.Is(err, identity.ErrNotAuthenticated):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		case errors.Is(err, ErrSubmitInFlight):
			ctx.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
		case errors.Is(err, ErrPersistenceFailure):
			// The draft survives a store failure, so the client can retry
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to save booking, please try again"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to submit booking",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Booking submitted successfully",
		"data":    confirmation,
	})
}

// GetUpcoming handles GET /api/v1/bookings/upcoming
func (c *Controller) GetUpcoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	upcoming, err := c.service.GetUpcoming(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch upcoming bookings"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Upcoming bookings retrieved successfully",
		"data":    upcoming,
		"count":   len(upcoming),
	})
}
