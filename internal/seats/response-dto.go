package seats

import "time"

type SeatHoldResponse struct {
	HoldID     string         `json:"hold_id"`
	ShowtimeID string         `json:"showtime_id"`
	UserID     string         `json:"user_id"`
	Seats      []HeldSeatInfo `json:"seats"`
	TotalPrice float64        `json:"total_price"`
	ExpiresAt  time.Time      `json:"expires_at"`
	TTL        int            `json:"ttl_seconds"`
}

type HeldSeatInfo struct {
	SeatID string  `json:"seat_id"`
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

// Hold validation models
type HoldValidationResult struct {
	Valid   bool         `json:"valid"`
	Reason  string       `json:"reason,omitempty"`
	Details *HoldDetails `json:"details,omitempty"`
	TTL     int          `json:"ttl_seconds,omitempty"`
}

// SeatMapResponse is the seat picker for one showtime
type SeatMapResponse struct {
	ShowtimeID string         `json:"showtime_id"`
	HallID     string         `json:"hall_id"`
	HallName   string         `json:"hall_name"`
	Columns    int            `json:"columns"`
	Rows       int            `json:"rows"`
	Seats      []SeatView     `json:"seats"`
	Summary    SeatMapSummary `json:"summary"`
}

type SeatMapSummary struct {
	Total     int     `json:"total"`
	Available int     `json:"available"`
	Booked    int     `json:"booked"`
	Locked    int     `json:"locked"`
	Occupancy float64 `json:"occupancy_percent"`
}
