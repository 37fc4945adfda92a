package bookings

import (
	"cineplex/internal/membership"
	"cineplex/internal/pricing"
)

type CheckoutResponse struct {
	Booking       *Booking            `json:"booking"`
	PointsBalance int                 `json:"points_balance"`
	Tier          membership.TierName `json:"tier"`
	TierUpgraded  bool                `json:"tier_upgraded"`
	Currency      string              `json:"currency"`
}

type CancelResponse struct {
	Booking        *Booking            `json:"booking"`
	Refund         pricing.RefundQuote `json:"refund"`
	PointsReversed int                 `json:"points_reversed"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// AdminBookingList adds the revenue of every matching active booking
type AdminBookingList struct {
	BookingListResponse
	Revenue float64 `json:"revenue"`
}

type RefundQuoteResponse struct {
	pricing.RefundQuote
	OriginalAmount      float64 `json:"original_amount"`
	HoursBeforeShowtime float64 `json:"hours_before_showtime"`
	BookingID           string  `json:"booking_id,omitempty"`
}
