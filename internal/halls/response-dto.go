package halls

// SeatLayoutResponse is a hall with its seats and grid bounds
type SeatLayoutResponse struct {
	Hall    Hall   `json:"hall"`
	Seats   []Seat `json:"seats"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

func NewSeatLayoutResponse(hall *Hall, seats []Seat) *SeatLayoutResponse {
	resp := &SeatLayoutResponse{Hall: *hall, Seats: seats}
	for _, s := range seats {
		if s.GridX > resp.Columns {
			resp.Columns = s.GridX
		}
		if s.GridY > resp.Rows {
			resp.Rows = s.GridY
		}
	}
	return resp
}

// UpdateHallStatusRequest changes a hall's operational status
type UpdateHallStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=active maintenance closed"`
}
