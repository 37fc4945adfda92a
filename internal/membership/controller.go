package membership

import (
	"errors"
	"net/http"
	"strconv"

	"cineplex/internal/shared/middleware"
	"cineplex/internal/shared/utils/response"
	"cineplex/internal/users"
	"cineplex/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetMembership handles GET /api/v1/membership
func (c *Controller) GetMembership(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	membership, err := c.service.GetMembership(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to get membership")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Membership retrieved successfully", membership, nil)
}

// History handles GET /api/v1/membership/history?limit=
func (c *Controller) History(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	history, err := c.service.History(ctx.Request.Context(), userID, limit)
	if err != nil {
		c.handleError(ctx, err, "Failed to get points history")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Points history retrieved successfully", history, nil)
}

// ListRewards handles GET /api/v1/rewards
func (c *Controller) ListRewards(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	rewards, err := c.service.ListRewards(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to get rewards")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Rewards retrieved successfully", rewards, nil)
}

// Redeem handles POST /api/v1/rewards/:id/redeem
func (c *Controller) Redeem(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	result, err := c.service.Redeem(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to redeem reward")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Reward redeemed successfully", result, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrRewardNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Reward not found", nil, nil)
	case errors.Is(err, users.ErrUserNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
	case errors.Is(err, ErrRewardUnavailable):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrInsufficientPoints):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
