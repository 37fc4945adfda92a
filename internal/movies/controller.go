package movies

import (
	"errors"
	"net/http"

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

// ListMovies handles GET /api/v1/movies
func (c *Controller) ListMovies(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	movies, err := c.service.ListMovies(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get movies", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", movies, nil)
}

// GetMovie handles GET /api/v1/movies/:id
func (c *Controller) GetMovie(ctx *gin.Context) {
	movie, err := c.service.GetMovie(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get movie")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie retrieved successfully", movie, nil)
}

// GetGenres handles GET /api/v1/genres
func (c *Controller) GetGenres(ctx *gin.Context) {
	facets, err := c.service.GetFacets(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get genres", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Genres retrieved successfully", facets, nil)
}

// NowShowing handles GET /api/v1/movies/now-showing
func (c *Controller) NowShowing(ctx *gin.Context) {
	movies, err := c.service.NowShowing(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get movies", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Now showing retrieved successfully", movies, nil)
}

// ComingSoon handles GET /api/v1/movies/coming-soon
func (c *Controller) ComingSoon(ctx *gin.Context) {
	movies, err := c.service.ComingSoon(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get movies", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Coming soon retrieved successfully", movies, nil)
}

// AdminListMovies handles GET /api/v1/admin/movies
func (c *Controller) AdminListMovies(ctx *gin.Context) {
	var query AdminListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := c.service.AdminListMovies(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get movies", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", list, nil)
}

// CreateMovie handles POST /api/v1/admin/movies
func (c *Controller) CreateMovie(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	movie, err := c.service.CreateMovie(ctx.Request.Context(), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to create movie")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Movie \""+movie.Title+"\" added successfully", movie, nil)
}

// UpdateMovie handles PUT /api/v1/admin/movies/:id
func (c *Controller) UpdateMovie(ctx *gin.Context) {
	var req UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	movie, err := c.service.UpdateMovie(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to update movie")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie \""+movie.Title+"\" updated successfully", movie, nil)
}

// DeleteMovie handles DELETE /api/v1/admin/movies/:id
func (c *Controller) DeleteMovie(ctx *gin.Context) {
	if err := c.service.DeleteMovie(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.handleError(ctx, err, "Failed to delete movie")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Movie deleted successfully", nil, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrMovieNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
	case errors.Is(err, ErrMovieHasShowtimes):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
