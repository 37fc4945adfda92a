package showtimes

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrShowtimeNotFound    = errors.New("showtime not found")
	ErrSlotTaken           = errors.New("hall already has a showtime in this slot")
	ErrShowtimeHasBookings = errors.New("showtime has booked seats")
	ErrMovieNotSchedulable = errors.New("movie cannot be scheduled")
	ErrHallUnavailable     = errors.New("hall is not active")
	ErrNotBookable         = errors.New("showtime is not open for booking")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Showtime, error)
	ListByMovie(ctx context.Context, movieID, date string) ([]Showtime, error)
	ListByDate(ctx context.Context, date string) ([]Showtime, error)
	ListAll(ctx context.Context) ([]Showtime, error)
	DatesForMovie(ctx context.Context, movieID string) ([]string, error)
	CountScheduledByMovie(ctx context.Context, movieID string) (int64, error)
	SlotTaken(ctx context.Context, hallID, date, time string) (bool, error)
	Count(ctx context.Context) (int64, error)
	IDs(ctx context.Context) ([]string, error)

	Create(tx *gorm.DB, showtime *Showtime) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(tx *gorm.DB, id string) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Showtime, error) {
	var st Showtime
	if err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *repository) ListByMovie(ctx context.Context, movieID, date string) ([]Showtime, error) {
	var list []Showtime
	query := r.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if date != "" {
		query = query.Where("date = ?", date)
	}
	err := query.Order("date, time, hall_id").Find(&list).Error
	return list, err
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Showtime, error) {
	var list []Showtime
	err := r.db.WithContext(ctx).Where("date = ?", date).Order("hall_name, time").Find(&list).Error
	return list, err
}

func (r *repository) ListAll(ctx context.Context) ([]Showtime, error) {
	var list []Showtime
	err := r.db.WithContext(ctx).Order("date, time").Find(&list).Error
	return list, err
}

func (r *repository) DatesForMovie(ctx context.Context, movieID string) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).Model(&Showtime{}).
		Where("movie_id = ? AND status = ?", movieID, StatusScheduled).
		Distinct("date").
		Order("date").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *repository) CountScheduledByMovie(ctx context.Context, movieID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Showtime{}).
		Where("movie_id = ? AND status = ?", movieID, StatusScheduled).
		Count(&count).Error
	return count, err
}

func (r *repository) SlotTaken(ctx context.Context, hallID, date, time string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Showtime{}).
		Where("hall_id = ? AND date = ? AND time = ?", hallID, date, time).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Showtime{}).Count(&count).Error
	return count, err
}

func (r *repository) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&Showtime{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Create(tx *gorm.DB, showtime *Showtime) error {
	return tx.Create(showtime).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	result := r.db.WithContext(ctx).Model(&Showtime{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShowtimeNotFound
	}
	return nil
}

func (r *repository) Delete(tx *gorm.DB, id string) error {
	result := tx.Delete(&Showtime{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShowtimeNotFound
	}
	return nil
}

func (r *repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
