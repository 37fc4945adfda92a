package favorites

import (
	"errors"
	"net/http"

	"cineplex/internal/movies"
	"cineplex/internal/shared/middleware"
	"cineplex/internal/shared/utils/response"
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

// List handles GET /api/v1/users/me/favorites
func (c *Controller) List(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	list, err := c.service.List(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to get favorites")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Favorites retrieved successfully", list, nil)
}

// Status handles GET /api/v1/users/me/favorites/:movieId
func (c *Controller) Status(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	status, err := c.service.Status(ctx.Request.Context(), userID, ctx.Param("movieId"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get favorite")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Favorite status retrieved successfully", status, nil)
}

// Add handles POST /api/v1/users/me/favorites
func (c *Controller) Add(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req AddFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	favorite, created, err := c.service.Add(ctx.Request.Context(), userID, req.MovieID)
	if err != nil {
		c.handleError(ctx, err, "Failed to add favorite")
		return
	}
	if !created {
		response.RespondJSON(ctx, "success", http.StatusOK, "Movie is already in favorites", favorite, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Movie added to favorites", favorite, nil)
}

// Remove handles DELETE /api/v1/users/me/favorites/:movieId
func (c *Controller) Remove(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	if err := c.service.Remove(ctx.Request.Context(), userID, ctx.Param("movieId")); err != nil {
		c.handleError(ctx, err, "Failed to remove favorite")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie removed from favorites", nil, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, movies.ErrMovieNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
	case errors.Is(err, ErrNotFavorite):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
