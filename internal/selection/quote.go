package selection

import (
	"math"

	"cineplex/internal/membership"
	"cineplex/internal/pricing"
)

type TicketLine struct {
	SeatID     string             `json:"seat_id"`
	Label      string             `json:"label"`
	SeatType   string             `json:"seat_type"`
	TicketType pricing.TicketType `json:"ticket_type"`
	Price      float64            `json:"price"`
}

type ConcessionLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Quote is the priced selection
type Quote struct {
	MovieID     string           `json:"movie_id,omitempty"`
	MovieTitle  string           `json:"movie_title,omitempty"`
	ShowtimeID  string           `json:"showtime_id,omitempty"`
	Tickets     []TicketLine     `json:"tickets"`
	Concessions []ConcessionLine `json:"concessions"`

	PromoCode      string  `json:"promo_code,omitempty"`
	PromoDiscount  float64 `json:"promo_discount"`
	MemberTier     string  `json:"member_tier"`
	MemberDiscount float64 `json:"member_discount"`

	pricing.PriceBreakdown
	PointsToEarn int    `json:"points_to_earn"`
	Currency     string `json:"currency"`
}

// SeatIDs lists the priced seats in order
func (q *Quote) SeatIDs() []string {
	ids := make([]string, len(q.Tickets))
	for i, t := range q.Tickets {
		ids[i] = t.SeatID
	}
	return ids
}

// SeatLabels lists the printed seat labels in order
func (q *Quote) SeatLabels() []string {
	labels := make([]string, len(q.Tickets))
	for i, t := range q.Tickets {
		labels[i] = t.Label
	}
	return labels
}

// price fills in the breakdown from the ticket and concession lines. The promo
// applies to the subtotal first, then the member discount to what is left.
func (q *Quote) price(taxRate float64) {
	tickets := make([]float64, len(q.Tickets))
	for i, t := range q.Tickets {
		tickets[i] = t.Price
	}
	concessionTotals := make([]float64, len(q.Concessions))
	for i, c := range q.Concessions {
		concessionTotals[i] = c.Total
	}

	subtotal := sum(tickets) + sum(concessionTotals)
	q.PromoDiscount = pricing.RoundMoney(pricing.CalculateDiscount(subtotal, q.PromoCode))
	q.MemberDiscount = pricing.RoundMoney(membership.DiscountAmount(q.MemberTier, math.Max(0, subtotal-q.PromoDiscount)))

	q.PriceBreakdown = pricing.CalculateBookingTotal(tickets, concessionTotals, q.PromoDiscount+q.MemberDiscount, taxRate).Rounded()
	q.PointsToEarn = pricing.CalculatePointsEarned(q.Total, q.MemberTier)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
