package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the indexes the hot read paths rely on. The
// statements are valid on both SQLite and PostgreSQL.
func MigrateConstraints(db *gorm.DB) error {
	// seat map and utilisation reads filter by showtime then status
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seat_statuses_showtime_status
		ON seat_statuses (showtime_id, status);
	`).Error
	if err != nil {
		return err
	}

	// booking history is listed newest first per user
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_points_transactions_user_created
		ON points_transactions (user_id, created_at);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
