package seats

import (
	"errors"
	"net/http"

	"cineplex/internal/shared/middleware"
	"cineplex/internal/shared/utils/response"
	"cineplex/internal/showtimes"
	"cineplex/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{service: service, validator: validator.New()}
}

// SeatMap handles GET /api/v1/showtimes/:id/seats
func (c *Controller) SeatMap(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	seatMap, err := c.service.SeatMap(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to get seat map")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// HoldSeats handles POST /api/v1/seats/hold
func (c *Controller) HoldSeats(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req SeatHoldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	hold, err := c.service.HoldSeats(ctx.Request.Context(), userID, req)
	if err != nil {
		c.handleError(ctx, err, "Failed to hold seats")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats held successfully", hold, nil)
}

// ReleaseHold handles DELETE /api/v1/seats/hold/:holdId
func (c *Controller) ReleaseHold(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := c.service.ReleaseHold(ctx.Request.Context(), ctx.Param("holdId"), userID); err != nil {
		c.handleError(ctx, err, "Failed to release hold")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Hold released successfully", nil, nil)
}

// ValidateHold handles GET /api/v1/seats/hold/:holdId/validate
func (c *Controller) ValidateHold(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.ValidateHold(ctx.Request.Context(), ctx.Param("holdId"), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to validate hold")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Hold validation completed", result, nil)
}

// GetUserHolds handles GET /api/v1/users/me/holds
func (c *Controller) GetUserHolds(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	holds, err := c.service.GetUserHolds(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to get user holds")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User holds retrieved successfully", holds, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, showtimes.ErrShowtimeNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
	case errors.Is(err, ErrHoldNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrHoldForbidden):
		response.RespondJSON(ctx, "error", http.StatusForbidden, err.Error(), nil, nil)
	case errors.Is(err, ErrSeatsHeld), errors.Is(err, ErrSeatUnavailable), errors.Is(err, ErrSeatConflict):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Seats not available", nil, err.Error())
	case errors.Is(err, ErrNoSeats), errors.Is(err, ErrTooManySeats), errors.Is(err, ErrSeatNotInHall):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, showtimes.ErrNotBookable):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
