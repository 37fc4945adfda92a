package selection

type SelectMovieRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

type SelectShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required"`
}

type TicketTypeRequest struct {
	TicketType string `json:"ticket_type" validate:"required"`
}

type PromoRequest struct {
	Code string `json:"code"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=20"`
}
