package selection

import (
	"errors"
	"net/http"

	"cineplex/internal/concessions"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/shared/middleware"
	"cineplex/internal/shared/utils/response"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
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

// bind decodes and validates a JSON body, answering 400 on failure
func (c *Controller) bind(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return false
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return false
	}
	return true
}

func (c *Controller) respond(ctx *gin.Context, state *State, err error, message string) {
	if err != nil {
		c.handleError(ctx, err, "Failed to update selection")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, message, state, nil)
}

// GetSelection handles GET /api/v1/selection
func (c *Controller) GetSelection(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.Get(ctx.Request.Context(), userID)
	c.respond(ctx, state, err, "Selection retrieved successfully")
}

// ClearSelection handles DELETE /api/v1/selection
func (c *Controller) ClearSelection(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.service.Clear(ctx.Request.Context(), userID); err != nil {
		c.handleError(ctx, err, "Failed to clear selection")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Selection cleared", nil, nil)
}

// SelectMovie handles PUT /api/v1/selection/movie
func (c *Controller) SelectMovie(ctx *gin.Context) {
	var req SelectMovieRequest
	if !c.bind(ctx, &req) {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.SelectMovie(ctx.Request.Context(), userID, req.MovieID)
	c.respond(ctx, state, err, "Movie selected")
}

// SelectShowtime handles PUT /api/v1/selection/showtime
func (c *Controller) SelectShowtime(ctx *gin.Context) {
	var req SelectShowtimeRequest
	if !c.bind(ctx, &req) {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.SelectShowtime(ctx.Request.Context(), userID, req.ShowtimeID)
	c.respond(ctx, state, err, "Showtime selected")
}

// ToggleSeat handles POST /api/v1/selection/seats/:seatId/toggle
func (c *Controller) ToggleSeat(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.ToggleSeat(ctx.Request.Context(), userID, ctx.Param("seatId"))
	c.respond(ctx, state, err, "Seat selection updated")
}

// SetTicketType handles PUT /api/v1/selection/seats/:seatId/ticket-type
func (c *Controller) SetTicketType(ctx *gin.Context) {
	var req TicketTypeRequest
	if !c.bind(ctx, &req) {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.SetTicketType(ctx.Request.Context(), userID, ctx.Param("seatId"), req.TicketType)
	c.respond(ctx, state, err, "Ticket type updated")
}

// SetPromo handles PUT /api/v1/selection/promo
func (c *Controller) SetPromo(ctx *gin.Context) {
	var req PromoRequest
	if !c.bind(ctx, &req) {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.SetPromo(ctx.Request.Context(), userID, req.Code)
	c.respond(ctx, state, err, "Promo code applied")
}

// AddToCart handles POST /api/v1/selection/cart/:itemId
func (c *Controller) AddToCart(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.AddToCart(ctx.Request.Context(), userID, ctx.Param("itemId"))
	c.respond(ctx, state, err, "Cart updated")
}

// SetCartQuantity handles PUT /api/v1/selection/cart/:itemId
func (c *Controller) SetCartQuantity(ctx *gin.Context) {
	var req CartQuantityRequest
	if !c.bind(ctx, &req) {
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.SetCartQuantity(ctx.Request.Context(), userID, ctx.Param("itemId"), req.Quantity)
	c.respond(ctx, state, err, "Cart updated")
}

// RemoveFromCart handles DELETE /api/v1/selection/cart/:itemId
func (c *Controller) RemoveFromCart(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	state, err := c.service.RemoveFromCart(ctx.Request.Context(), userID, ctx.Param("itemId"))
	c.respond(ctx, state, err, "Cart updated")
}

// GetQuote handles GET /api/v1/selection/quote
func (c *Controller) GetQuote(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	quote, err := c.service.Quote(ctx.Request.Context(), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to price selection")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Quote calculated successfully", quote, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, movies.ErrMovieNotFound),
		errors.Is(err, showtimes.ErrShowtimeNotFound),
		errors.Is(err, concessions.ErrItemNotFound),
		errors.Is(err, users.ErrUserNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrSeatUnavailable),
		errors.Is(err, concessions.ErrInsufficientStock):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrNoMovie),
		errors.Is(err, ErrNoShowtime),
		errors.Is(err, ErrSeatNotSelected),
		errors.Is(err, ErrUnknownPromoCode),
		errors.Is(err, seats.ErrSeatNotInHall),
		errors.Is(err, seats.ErrTooManySeats),
		errors.Is(err, pricing.ErrUnknownTicketType):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrMovieNotShowing),
		errors.Is(err, showtimes.ErrNotBookable):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
