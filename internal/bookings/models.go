package bookings

import (
	"fmt"
	"time"

	"cineplex/internal/selection"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Booking is a confirmed purchase. Movie, hall and seat labels are copied at
// checkout so history survives schedule changes.
type Booking struct {
	ID            string `json:"id" gorm:"primaryKey;size:64"`
	ReferenceCode string `json:"reference_code" gorm:"size:20;uniqueIndex;not null"`
	UserID        string `json:"user_id" gorm:"size:64;index;not null"`
	MovieID       string `json:"movie_id" gorm:"size:32;index"`
	MovieTitle    string `json:"movie_title" gorm:"size:255"`
	PosterURL     string `json:"poster_url" gorm:"size:500"`
	ShowtimeID    string `json:"showtime_id" gorm:"size:32;index"`
	Date          string `json:"date" gorm:"size:10"`
	Time          string `json:"time" gorm:"size:5"`
	Hall          string `json:"hall" gorm:"size:100"`

	Seats       []string                   `json:"seats" gorm:"serializer:json"`
	SeatIDs     []string                   `json:"seat_ids" gorm:"serializer:json"`
	Tickets     []selection.TicketLine     `json:"tickets,omitempty" gorm:"serializer:json"`
	Concessions []selection.ConcessionLine `json:"concessions,omitempty" gorm:"serializer:json"`

	TicketTotal     float64 `json:"ticket_total"`
	ConcessionTotal float64 `json:"concession_total"`
	Discount        float64 `json:"discount"`
	Tax             float64 `json:"tax"`
	TotalAmount     float64 `json:"total_amount" gorm:"not null"`
	PointsEarned    int     `json:"points_earned"`
	PromoCode       string  `json:"promo_code,omitempty" gorm:"size:32"`

	Status        Status     `json:"status" gorm:"size:20;index;not null;default:'confirmed'"`
	PaymentMethod string     `json:"payment_method" gorm:"size:50"`
	TransactionID string     `json:"transaction_id,omitempty" gorm:"size:64"`
	RefundAmount  float64    `json:"refund_amount,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// StartsAt is the screening start in the cinema's time zone
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid screening time on booking %s: %w", b.ID, err)
	}
	return t, nil
}

// HoursBeforeShowtime is negative once the screening started
func (b *Booking) HoursBeforeShowtime(now time.Time, loc *time.Location) (float64, error) {
	start, err := b.StartsAt(loc)
	if err != nil {
		return 0, err
	}
	return start.Sub(now).Hours(), nil
}
