package seats

// SeatHoldRequest asks for a short-lived lock on seats of one showtime
type SeatHoldRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required"`
	SeatIDs    []string `json:"seat_ids" validate:"required,min=1,dive,required"`
}
