package seats

import (
	"time"

	"cineplex/internal/halls"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusLocked    Status = "locked"
)

// SeatStatus is the occupancy of one seat for one showtime.
// (ShowtimeID, SeatID) is the primary key.
type SeatStatus struct {
	ShowtimeID string    `json:"showtime_id" gorm:"primaryKey;size:32"`
	SeatID     string    `json:"seat_id" gorm:"primaryKey;size:48"`
	Status     Status    `json:"status" gorm:"size:20;not null;default:'available';index"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SeatStatus) TableName() string { return "seat_statuses" }

// HoldDetails describes a live seat hold
type HoldDetails struct {
	HoldID     string    `json:"hold_id"`
	UserID     string    `json:"user_id"`
	ShowtimeID string    `json:"showtime_id"`
	SeatIDs    []string  `json:"seat_ids"`
	ExpiresAt  time.Time `json:"expires_at"`
	TTL        int       `json:"ttl_seconds"`
}

// HoldRef identifies who holds a seat
type HoldRef struct {
	UserID string `json:"user_id"`
	HoldID string `json:"hold_id"`
}

// SeatView is a hall seat with its effective status for one showtime
type SeatView struct {
	halls.Seat
	Status   Status  `json:"status"`
	Price    float64 `json:"price"`
	HeldByMe bool    `json:"held_by_me,omitempty"`
}

// IsSelectable reports whether the seat can join a selection
func (v SeatView) IsSelectable() bool {
	return v.Status == StatusAvailable
}
