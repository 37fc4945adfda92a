package showtimes

import (
	"errors"
	"net/http"

	"cineplex/internal/halls"
	"cineplex/internal/movies"
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

// GetShowtime handles GET /api/v1/showtimes/:id
func (c *Controller) GetShowtime(ctx *gin.Context) {
	detail, err := c.service.GetShowtimeDetail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get showtime")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime retrieved successfully", detail, nil)
}

// ShowtimesForMovie handles GET /api/v1/movies/:id/showtimes?date=
func (c *Controller) ShowtimesForMovie(ctx *gin.Context) {
	list, err := c.service.ShowtimesForMovie(ctx.Request.Context(), ctx.Param("id"), ctx.Query("date"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get showtimes")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Showtimes retrieved successfully", list, nil)
}

// DatesForMovie handles GET /api/v1/movies/:id/dates
func (c *Controller) DatesForMovie(ctx *gin.Context) {
	dates, err := c.service.DatesForMovie(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to get dates")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Dates retrieved successfully", dates, nil)
}

// Schedule handles GET /api/v1/admin/showtimes?date=
func (c *Controller) Schedule(ctx *gin.Context) {
	var query ScheduleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	schedule, err := c.service.Schedule(ctx.Request.Context(), query.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get schedule", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Schedule retrieved successfully", schedule, nil)
}

// CreateShowtime handles POST /api/v1/admin/showtimes
func (c *Controller) CreateShowtime(ctx *gin.Context) {
	var req CreateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	st, err := c.service.CreateShowtime(ctx.Request.Context(), req)
	if err != nil {
		c.handleError(ctx, err, "Failed to create showtime")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Showtime created successfully", st, nil)
}

// CancelShowtime handles PATCH /api/v1/admin/showtimes/:id/cancel
func (c *Controller) CancelShowtime(ctx *gin.Context) {
	st, err := c.service.CancelShowtime(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to cancel showtime")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime cancelled", st, nil)
}

// DeleteShowtime handles DELETE /api/v1/admin/showtimes/:id
func (c *Controller) DeleteShowtime(ctx *gin.Context) {
	if err := c.service.DeleteShowtime(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.handleError(ctx, err, "Failed to delete showtime")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime deleted successfully", nil, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrShowtimeNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
	case errors.Is(err, movies.ErrMovieNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
	case errors.Is(err, halls.ErrHallNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Hall not found", nil, nil)
	case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrShowtimeHasBookings):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrMovieNotSchedulable), errors.Is(err, ErrHallUnavailable):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
