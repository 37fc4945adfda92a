package bookings

import (
	"errors"
	"net/http"

	"cineplex/internal/concessions"
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

// Checkout handles POST /api/v1/bookings/checkout
func (c *Controller) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	result, err := c.service.Checkout(ctx.Request.Context(), userID, req)
	if err != nil {
		var payErr *PaymentError
		if errors.As(err, &payErr) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment details", nil, payErr.Fields)
			return
		}
		c.handleError(ctx, err, "Failed to complete checkout")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", result, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	booking, err := c.service.GetBooking(ctx.Request.Context(), ctx.Param("id"), userID, middleware.IsBackOffice(ctx))
	if err != nil {
		c.handleError(ctx, err, "Failed to get booking")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	result, err := c.service.Cancel(ctx.Request.Context(), ctx.Param("id"), userID)
	if err != nil {
		c.handleError(ctx, err, "Failed to cancel booking")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled", result, nil)
}

// GetUserBookings handles GET /api/v1/users/me/bookings?status=&limit=&offset=
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	result, err := c.service.UserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		c.handleError(ctx, err, "Failed to get bookings")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// RefundQuote handles POST /api/v1/pricing/refund-quote
func (c *Controller) RefundQuote(ctx *gin.Context) {
	var req RefundQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	userID, authenticated := middleware.CurrentUserID(ctx)
	if req.BookingID != "" && !authenticated {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Sign in to quote a booking", nil, nil)
		return
	}

	quote, err := c.service.RefundQuote(ctx.Request.Context(), userID, req)
	if err != nil {
		c.handleError(ctx, err, "Failed to quote refund")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Refund quote calculated", quote, nil)
}

// AdminListBookings handles GET /api/v1/admin/bookings?q=&status=&limit=&offset=
func (c *Controller) AdminListBookings(ctx *gin.Context) {
	var query AdminListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}
	if query.Status != "" && query.Status != "all" && !Status(query.Status).IsValid() {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unknown booking status", nil, query.Status)
		return
	}

	result, err := c.service.AdminList(ctx.Request.Context(), query)
	if err != nil {
		c.handleError(ctx, err, "Failed to list bookings")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// CompleteBooking handles POST /api/v1/admin/bookings/:id/complete
func (c *Controller) CompleteBooking(ctx *gin.Context) {
	booking, err := c.service.MarkCompleted(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "Failed to complete booking")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Booking marked as completed", booking, nil)
}

func (c *Controller) handleError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, showtimes.ErrShowtimeNotFound),
		errors.Is(err, users.ErrUserNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrNotOwner),
		errors.Is(err, seats.ErrHoldForbidden):
		response.RespondJSON(ctx, "error", http.StatusForbidden, err.Error(), nil, nil)
	case errors.Is(err, ErrNotCancellable),
		errors.Is(err, ErrNotCompletable),
		errors.Is(err, seats.ErrSeatConflict),
		errors.Is(err, concessions.ErrInsufficientStock),
		errors.Is(err, concessions.ErrItemUnavailable):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrHoldInvalid),
		errors.Is(err, ErrHoldMismatch),
		errors.Is(err, ErrRefundQueryIncomplete):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrNotRefundable),
		errors.Is(err, showtimes.ErrNotBookable):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		logger.GetDefault().LogHTTPError(ctx, err, http.StatusInternalServerError)
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
