package showtimes

import (
	"cineplex/internal/halls"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
)

// ShowtimeDetail is a showtime with its movie and the countdown to start
type ShowtimeDetail struct {
	Showtime
	Movie     *movies.Movie     `json:"movie"`
	Countdown pricing.Countdown `json:"countdown"`
	Bookable  bool              `json:"bookable"`
}

// HallSchedule is one hall's screenings for a day, ordered by time
type HallSchedule struct {
	HallName  string         `json:"hall_name"`
	HallType  halls.HallType `json:"hall_type"`
	Showtimes []ScheduleItem `json:"showtimes"`
}

type ScheduleItem struct {
	Showtime
	MovieTitle string `json:"movie_title"`
}

// DaySchedule is the back-office schedule for one date
type DaySchedule struct {
	Date  string         `json:"date"`
	Halls []HallSchedule `json:"halls"`
	Total int            `json:"total"`
}
