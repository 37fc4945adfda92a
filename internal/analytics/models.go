package analytics

import "time"

// Dashboard is the back-office landing summary
type Dashboard struct {
	Overview         OverviewMetrics  `json:"overview"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	Currency         string           `json:"currency"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

type OverviewMetrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalBookings    int64   `json:"total_bookings"`
	ActiveMovies     int64   `json:"active_movies"`
	AverageRating    float64 `json:"average_rating"`
	TodayShowtimes   int64   `json:"today_showtimes"`
	TotalUsers       int64   `json:"total_users"`
	CancellationRate float64 `json:"cancellation_rate"`
}

// Reports bundles the charts of the reports screen
type Reports struct {
	Days                 int               `json:"days"`
	RevenueByDay         []DailyRevenue    `json:"revenue_by_day"`
	GenrePopularity      []GenreCount      `json:"genre_popularity"`
	HallUtilisation      []HallUtilisation `json:"hall_utilisation"`
	ConcessionCategories []CategoryStock   `json:"concession_categories"`
	PaymentMethods       []PaymentSplit    `json:"payment_methods"`
	TopMovies            []MovieRanking    `json:"top_movies"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

type DailyRevenue struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
	Tickets  int     `json:"tickets"`
}

type GenreCount struct {
	Genre   string `json:"genre"`
	Tickets int    `json:"tickets"`
}

type HallUtilisation struct {
	HallID      string  `json:"hall_id"`
	HallName    string  `json:"hall_name"`
	TotalSeats  int     `json:"total_seats"`
	BookedSeats int     `json:"booked_seats"`
	Occupancy   float64 `json:"occupancy"`
}

type CategoryStock struct {
	Category  string `json:"category"`
	Items     int    `json:"items"`
	Available int    `json:"available"`
	Stock     int    `json:"stock"`
}

type PaymentSplit struct {
	Method   string  `json:"method"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Share    float64 `json:"share"`
}

type MovieRanking struct {
	MovieID string  `json:"movie_id"`
	Title   string  `json:"title"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}
