package database

import (
	"cineplex/internal/bookings"
	"cineplex/internal/concessions"
	"cineplex/internal/favorites"
	"cineplex/internal/halls"
	"cineplex/internal/membership"
	"cineplex/internal/movies"
	"cineplex/internal/seats"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"

	"gorm.io/gorm"
)

// Models lists every persisted type in creation order
func Models() []interface{} {
	return []interface{}{
		&halls.Cinema{},
		&halls.Hall{},
		&halls.Seat{},
		&movies.Movie{},
		&showtimes.Showtime{},
		&seats.SeatStatus{},
		&concessions.Item{},
		&users.User{},
		&membership.Reward{},
		&membership.PointsTransaction{},
		&bookings.Booking{},
		&favorites.Favorite{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
