package bookings

import "cineplex/internal/validation"

type CheckoutRequest struct {
	HoldID        string `json:"hold_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
	// Card is required for card payments and ignored otherwise
	Card *validation.PaymentDetails `json:"card,omitempty"`
}

// ListQuery pages a member's booking history
type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// AdminListQuery filters the back-office booking table
type AdminListQuery struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// RefundQuoteRequest prices a cancellation either for a booking the caller
// owns or for a raw amount and lead time.
type RefundQuoteRequest struct {
	BookingID           string   `json:"booking_id"`
	Amount              *float64 `json:"amount" validate:"omitempty,gte=0"`
	HoursBeforeShowtime *float64 `json:"hours_before_showtime"`
}
