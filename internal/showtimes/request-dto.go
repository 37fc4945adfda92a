package showtimes

type CreateShowtimeRequest struct {
	MovieID  string   `json:"movie_id" validate:"required"`
	HallID   string   `json:"hall_id" validate:"required"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string   `json:"time" validate:"required,datetime=15:04"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	VIPPrice *float64 `json:"vip_price" validate:"omitempty,gt=0"`
}

type ScheduleQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
