package seats

import (
	"context"
	"errors"
	"fmt"

	"cineplex/internal/halls"

	"gorm.io/gorm"
)

var (
	ErrSeatConflict    = errors.New("one or more seats are no longer available")
	ErrSeatUnavailable = errors.New("seat is not available")
	ErrSeatNotFound    = errors.New("seat not found")
	ErrSeatNotInHall   = errors.New("seat does not belong to this showtime's hall")
	ErrTooManySeats    = errors.New("too many seats in one hold")
	ErrNoSeats         = errors.New("at least one seat is required")
	ErrHoldForbidden   = errors.New("hold belongs to another user")
)

type Repository interface {
	InitializeForShowtime(tx *gorm.DB, showtimeID, hallID string) error
	DeleteForShowtime(tx *gorm.DB, showtimeID string) error

	StatusesFor(ctx context.Context, showtimeID string, seatIDs []string) (map[string]Status, error)
	CountByStatus(ctx context.Context, showtimeID string, status Status) (int64, error)

	MarkBooked(tx *gorm.DB, showtimeID string, seatIDs []string) error
	MarkAvailable(tx *gorm.DB, showtimeID string, seatIDs []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// InitializeForShowtime inserts an available status for every seat in the hall
func (r *repository) InitializeForShowtime(tx *gorm.DB, showtimeID, hallID string) error {
	var seatIDs []string
	if err := tx.Model(&halls.Seat{}).Where("hall_id = ?", hallID).Order("id").Pluck("id", &seatIDs).Error; err != nil {
		return fmt.Errorf("failed to load hall seats: %w", err)
	}
	if len(seatIDs) == 0 {
		return nil
	}

	statuses := make([]SeatStatus, len(seatIDs))
	for i, id := range seatIDs {
		statuses[i] = SeatStatus{ShowtimeID: showtimeID, SeatID: id, Status: StatusAvailable}
	}
	return tx.CreateInBatches(statuses, 200).Error
}

func (r *repository) DeleteForShowtime(tx *gorm.DB, showtimeID string) error {
	return tx.Where("showtime_id = ?", showtimeID).Delete(&SeatStatus{}).Error
}

// StatusesFor returns the stored status of the given seats. Seats without a
// row are absent from the map.
func (r *repository) StatusesFor(ctx context.Context, showtimeID string, seatIDs []string) (map[string]Status, error) {
	var statuses []SeatStatus
	err := r.db.WithContext(ctx).
		Where("showtime_id = ? AND seat_id IN ?", showtimeID, seatIDs).
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]Status, len(statuses))
	for _, s := range statuses {
		out[s.SeatID] = s.Status
	}
	return out, nil
}

func (r *repository) CountByStatus(ctx context.Context, showtimeID string, status Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SeatStatus{}).
		Where("showtime_id = ? AND status = ?", showtimeID, status).
		Count(&count).Error
	return count, err
}

// MarkBooked flips available seats to booked. If any seat was not available
// the whole update is rejected with ErrSeatConflict.
func (r *repository) MarkBooked(tx *gorm.DB, showtimeID string, seatIDs []string) error {
	result := tx.Model(&SeatStatus{}).
		Where("showtime_id = ? AND seat_id IN ? AND status = ?", showtimeID, seatIDs, StatusAvailable).
		Update("status", StatusBooked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(seatIDs)) {
		return ErrSeatConflict
	}
	return nil
}

func (r *repository) MarkAvailable(tx *gorm.DB, showtimeID string, seatIDs []string) error {
	return tx.Model(&SeatStatus{}).
		Where("showtime_id = ? AND seat_id IN ? AND status = ?", showtimeID, seatIDs, StatusBooked).
		Update("status", StatusAvailable).Error
}
