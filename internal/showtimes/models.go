package showtimes

import (
	"fmt"
	"time"

	"cineplex/internal/halls"
	"cineplex/internal/pricing"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusEnded     Status = "ended"
)

// DailySlots are the six screening times offered every day
var DailySlots = []string{"10:30", "13:00", "15:30", "18:00", "20:30", "23:00"}

type Showtime struct {
	ID       string         `json:"id" gorm:"primaryKey;size:32"`
	MovieID  string         `json:"movie_id" gorm:"size:32;not null;index:idx_showtime_movie_date"`
	HallID   string         `json:"hall_id" gorm:"size:32;not null;index:idx_showtime_slot"`
	HallName string         `json:"hall_name" gorm:"size:100"`
	HallType halls.HallType `json:"hall_type" gorm:"size:20"`
	Date     string         `json:"date" gorm:"size:10;not null;index:idx_showtime_movie_date;index:idx_showtime_slot"`
	Time     string         `json:"time" gorm:"size:5;not null;index:idx_showtime_slot"`
	Price    float64        `json:"price" gorm:"not null"`
	VIPPrice float64        `json:"vip_price" gorm:"not null"`
	Status   Status         `json:"status" gorm:"size:20;index;default:'scheduled'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Showtime) TableName() string { return "showtimes" }

// StartsAt resolves the showtime's local date and time in loc
func (s *Showtime) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid showtime %s: %w", s.ID, err)
	}
	return t, nil
}

// HoursUntil is the time left before the showtime starts, negative once started
func (s *Showtime) HoursUntil(now time.Time, loc *time.Location) (float64, error) {
	start, err := s.StartsAt(loc)
	if err != nil {
		return 0, err
	}
	return start.Sub(now).Hours(), nil
}

// SeatPrice prices one seat for a ticket type. VIP seats start from the VIP
// price, which already carries the VIP premium. Every other class applies its
// multiplier to the standard price.
func (s *Showtime) SeatPrice(seatType halls.SeatType, ticket pricing.TicketType) (float64, error) {
	if seatType == halls.SeatVIP {
		return pricing.CalculateTicketPrice(s.VIPPrice, pricing.SeatStandard, ticket)
	}
	return pricing.CalculateTicketPrice(s.Price, seatType.PricingType(), ticket)
}

// HallLabel renders the hall the way tickets print it, e.g. "Hall 1 (IMAX)"
func (s *Showtime) HallLabel() string {
	return fmt.Sprintf("%s (%s)", s.HallName, s.HallType)
}

type hallPrice struct {
	standard float64
	vip      float64
}

var priceTable = map[halls.HallType]hallPrice{
	halls.HallIMAX:     {25, 45},
	halls.HallDolby:    {22, 40},
	halls.Hall4DX:      {35, 55},
	halls.HallStandard: {18, 32},
}

// PricesFor returns the standard and VIP price for a hall type. Unknown types
// are priced as Standard.
func PricesFor(hallType halls.HallType) (standard, vip float64) {
	p, ok := priceTable[hallType]
	if !ok {
		p = priceTable[halls.HallStandard]
	}
	return p.standard, p.vip
}
