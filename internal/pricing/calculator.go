package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"cineplex/internal/membership"
)

var (
	ErrUnknownSeatType   = errors.New("unknown seat type")
	ErrUnknownTicketType = errors.New("unknown ticket type")
	ErrNegativePrice     = errors.New("price must not be negative")
)

// DefaultTaxRate is the Malaysian service tax applied at checkout
const DefaultTaxRate = 0.06

type SeatType string

const (
	SeatStandard   SeatType = "standard"
	SeatVIP        SeatType = "vip"
	SeatCouple     SeatType = "couple"
	SeatWheelchair SeatType = "wheelchair"
)

type TicketType string

const (
	TicketAdult   TicketType = "adult"
	TicketChild   TicketType = "child"
	TicketStudent TicketType = "student"
	TicketSenior  TicketType = "senior"
)

var seatMultipliers = map[SeatType]float64{
	SeatStandard:   1.0,
	SeatVIP:        1.5,
	SeatCouple:     2.5,
	SeatWheelchair: 1.0,
}

var ticketMultipliers = map[TicketType]float64{
	TicketAdult:   1.0,
	TicketChild:   0.7,
	TicketStudent: 0.8,
	TicketSenior:  0.75,
}

// TicketTypeInfo describes a ticket category offered at checkout
type TicketTypeInfo struct {
	ID              TicketType `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	PriceMultiplier float64    `json:"price_multiplier"`
	IsActive        bool       `json:"is_active"`
}

// TicketTypes lists the ticket categories in display order
func TicketTypes() []TicketTypeInfo {
	return []TicketTypeInfo{
		{TicketAdult, "Adult", "Standard adult ticket", ticketMultipliers[TicketAdult], true},
		{TicketChild, "Child", "Ages 3-12", ticketMultipliers[TicketChild], true},
		{TicketStudent, "Student", "With valid student ID", ticketMultipliers[TicketStudent], true},
		{TicketSenior, "Senior", "Ages 60+", ticketMultipliers[TicketSenior], true},
	}
}

// ParseTicketType normalises a ticket type, empty means adult
func ParseTicketType(s string) (TicketType, error) {
	if s == "" {
		return TicketAdult, nil
	}
	t := TicketType(strings.ToLower(s))
	if _, ok := ticketMultipliers[t]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTicketType, s)
	}
	return t, nil
}

// CalculateTicketPrice is base x seat multiplier x ticket multiplier
func CalculateTicketPrice(base float64, seat SeatType, ticket TicketType) (float64, error) {
	if base < 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrNegativePrice, base)
	}
	sm, ok := seatMultipliers[seat]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSeatType, seat)
	}
	tm, ok := ticketMultipliers[ticket]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTicketType, ticket)
	}
	return base * sm * tm, nil
}

// PriceBreakdown is the full checkout arithmetic
type PriceBreakdown struct {
	TicketTotal        float64 `json:"ticket_total"`
	ConcessionTotal    float64 `json:"concession_total"`
	Subtotal           float64 `json:"subtotal"`
	Discount           float64 `json:"discount"`
	DiscountedSubtotal float64 `json:"discounted_subtotal"`
	Tax                float64 `json:"tax"`
	Total              float64 `json:"total"`
}

// CalculateBookingTotal sums tickets and concessions, subtracts the discount
// (never below zero) and adds tax on the discounted subtotal.
func CalculateBookingTotal(tickets, concessions []float64, discount, taxRate float64) PriceBreakdown {
	ticketTotal := sum(tickets)
	concessionTotal := sum(concessions)
	subtotal := ticketTotal + concessionTotal
	discounted := math.Max(0, subtotal-discount)
	tax := discounted * taxRate

	return PriceBreakdown{
		TicketTotal:        ticketTotal,
		ConcessionTotal:    concessionTotal,
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		Tax:                tax,
		Total:              discounted + tax,
	}
}

// Rounded returns the breakdown with every amount rounded to cents
func (b PriceBreakdown) Rounded() PriceBreakdown {
	return PriceBreakdown{
		TicketTotal:        RoundMoney(b.TicketTotal),
		ConcessionTotal:    RoundMoney(b.ConcessionTotal),
		Subtotal:           RoundMoney(b.Subtotal),
		Discount:           RoundMoney(b.Discount),
		DiscountedSubtotal: RoundMoney(b.DiscountedSubtotal),
		Tax:                RoundMoney(b.Tax),
		Total:              RoundMoney(b.Total),
	}
}

type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFixed      PromoKind = "fixed"
)

// Promo is one entry of the promo code table
type Promo struct {
	Code  string    `json:"code"`
	Kind  PromoKind `json:"kind"`
	Value float64   `json:"value"`
}

var promoCodes = map[string]Promo{
	"WELCOME10":    {Code: "WELCOME10", Kind: PromoPercentage, Value: 0.10},
	"SAVE20":       {Code: "SAVE20", Kind: PromoFixed, Value: 20},
	"STUDENT":      {Code: "STUDENT", Kind: PromoPercentage, Value: 0.15},
	"FIRSTBOOKING": {Code: "FIRSTBOOKING", Kind: PromoPercentage, Value: 0.20},
}

// LookupPromo finds a promo code, case-insensitively
func LookupPromo(code string) (Promo, bool) {
	p, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// CalculateDiscount returns the promo discount on subtotal. Unknown codes give 0
// and fixed discounts never exceed the subtotal.
func CalculateDiscount(subtotal float64, code string) float64 {
	p, ok := LookupPromo(code)
	if !ok {
		return 0
	}
	if p.Kind == PromoPercentage {
		return subtotal * p.Value
	}
	return math.Min(p.Value, subtotal)
}

// CalculatePointsEarned is floor(amount) x tier multiplier, floored
func CalculatePointsEarned(amount float64, tier string) int {
	base := math.Floor(amount)
	return int(math.Floor(base * membership.Multiplier(tier)))
}

// RefundQuote is the outcome of the refund policy
type RefundQuote struct {
	RefundAmount     float64 `json:"refund_amount"`
	RefundPercentage float64 `json:"refund_percentage"`
	CanRefund        bool    `json:"can_refund"`
}

// CalculateRefund applies the tiered policy: more than 24h 100%, more than 12h 75%,
// more than 6h 50%, otherwise nothing.
func CalculateRefund(originalAmount, hoursBeforeShowtime float64) RefundQuote {
	var pct float64
	switch {
	case hoursBeforeShowtime > 24:
		pct = 1.0
	case hoursBeforeShowtime > 12:
		pct = 0.75
	case hoursBeforeShowtime > 6:
		pct = 0.50
	default:
		return RefundQuote{}
	}

	return RefundQuote{
		RefundAmount:     originalAmount * pct,
		RefundPercentage: pct * 100,
		CanRefund:        true,
	}
}

// CalculateOccupancy returns booked/total as a percentage
func CalculateOccupancy(totalSeats, bookedSeats int) float64 {
	if totalSeats == 0 {
		return 0
	}
	return float64(bookedSeats) / float64(totalSeats) * 100
}

// CalculateAverageRating averages ratings to one decimal place
func CalculateAverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	return math.Round(sum(ratings)/float64(len(ratings))*10) / 10
}

// Countdown is the time left before a showtime starts
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	IsToday bool `json:"is_today"`
	IsPast  bool `json:"is_past"`
}

// TimeUntilShowtime splits the gap between now and start into days, hours and minutes
func TimeUntilShowtime(start, now time.Time) Countdown {
	diff := start.Sub(now)
	if diff < 0 {
		return Countdown{IsPast: true}
	}

	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)

	return Countdown{Days: days, Hours: hours, Minutes: minutes, IsToday: days == 0}
}

// RoundMoney rounds to cents
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
