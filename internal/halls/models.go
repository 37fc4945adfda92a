package halls

import (
	"strconv"

	"cineplex/internal/pricing"
)

type HallType string

const (
	HallStandard HallType = "Standard"
	HallIMAX     HallType = "IMAX"
	HallDolby    HallType = "Dolby"
	Hall4DX      HallType = "4DX"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusClosed      Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusClosed:
		return true
	}
	return false
}

type SeatType string

const (
	SeatStandard   SeatType = "Standard"
	SeatVIP        SeatType = "VIP"
	SeatTwin       SeatType = "Twin"
	SeatWheelchair SeatType = "Wheelchair"
)

// PricingType maps a seat class onto the price multiplier table
func (t SeatType) PricingType() pricing.SeatType {
	switch t {
	case SeatVIP:
		return pricing.SeatVIP
	case SeatTwin:
		return pricing.SeatCouple
	case SeatWheelchair:
		return pricing.SeatWheelchair
	default:
		return pricing.SeatStandard
	}
}

type Cinema struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Name     string `json:"name" gorm:"not null"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Status   Status `json:"status" gorm:"size:20;default:'active'"`
	Halls    []Hall `json:"halls" gorm:"foreignKey:CinemaID"`
}

type Hall struct {
	ID          string   `json:"id" gorm:"primaryKey;size:32"`
	CinemaID    string   `json:"cinema_id" gorm:"size:32;index;not null"`
	Name        string   `json:"name" gorm:"not null"`
	Type        HallType `json:"type" gorm:"size:20;not null"`
	TotalSeats  int      `json:"total_seats"`
	Rows        int      `json:"rows"`
	SeatsPerRow int      `json:"seats_per_row"`
	HasVIPRows  bool     `json:"has_vip_rows"`
	Status      Status   `json:"status" gorm:"size:20;default:'active'"`
}

func (h *Hall) IsBookable() bool {
	return h.Status == StatusActive
}

// Seat is one physical seat. (HallID, Row, Number) is unique.
type Seat struct {
	ID     string   `json:"id" gorm:"primaryKey;size:48"`
	HallID string   `json:"hall_id" gorm:"size:32;not null;uniqueIndex:idx_seat_position"`
	Row    string   `json:"row" gorm:"column:row_label;size:2;not null;uniqueIndex:idx_seat_position"`
	Number int      `json:"number" gorm:"not null;uniqueIndex:idx_seat_position"`
	GridX  int      `json:"grid_x"`
	GridY  int      `json:"grid_y"`
	Type   SeatType `json:"type" gorm:"size:20;not null"`
}

// Label is the printed seat label, e.g. "E5"
func (s Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

func (Cinema) TableName() string { return "cinemas" }
func (Hall) TableName() string   { return "halls" }
func (Seat) TableName() string   { return "seats" }
