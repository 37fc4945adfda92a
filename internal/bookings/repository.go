package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrNotCancellable  = errors.New("only confirmed bookings can be cancelled")
	ErrNotCompletable  = errors.New("only confirmed bookings can be completed")
	ErrNotRefundable   = errors.New("cancellations close 6 hours before the showtime")
	ErrEmptySelection  = errors.New("no seats selected")
	ErrHoldInvalid     = errors.New("seat hold is invalid or expired")
	ErrHoldMismatch    = errors.New("seat hold does not match the selection")
	ErrInvalidPayment  = errors.New("invalid payment details")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Repository interface {
	Create(tx *gorm.DB, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ReferenceExists(ctx context.Context, code string) (bool, error)

	ListByUser(ctx context.Context, userID string, query ListQuery) ([]Booking, int64, error)
	ListAll(ctx context.Context, query AdminListQuery) ([]Booking, int64, error)
	Revenue(ctx context.Context, query AdminListQuery) (float64, error)

	// Cancel moves a confirmed booking to cancelled. A booking that is no
	// longer confirmed yields ErrNotCancellable.
	Cancel(tx *gorm.DB, id string, refund float64, at time.Time) error
	MarkCompleted(ctx context.Context, id string) error

	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(tx *gorm.DB, booking *Booking) error {
	return tx.Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ReferenceExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Where("reference_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByUser(ctx context.Context, userID string, query ListQuery) ([]Booking, int64, error) {
	base := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)
	base = applyFilters(base, "", query.Status)
	return page(base, query.Limit, query.Offset)
}

func (r *repository) ListAll(ctx context.Context, query AdminListQuery) ([]Booking, int64, error) {
	base := r.db.WithContext(ctx).Model(&Booking{})
	base = applyFilters(base, query.Search, query.Status)
	return page(base, query.Limit, query.Offset)
}

func (r *repository) Revenue(ctx context.Context, query AdminListQuery) (float64, error) {
	var revenue float64
	base := r.db.WithContext(ctx).Model(&Booking{})
	base = applyFilters(base, query.Search, query.Status)
	err := base.
		Where("status IN ?", []Status{StatusConfirmed, StatusCompleted}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *repository) Cancel(tx *gorm.DB, id string, refund float64, at time.Time) error {
	result := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", id, StatusConfirmed).
		Updates(map[string]interface{}{
			"status":        StatusCancelled,
			"refund_amount": refund,
			"cancelled_at":  at,
			"updated_at":    at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotCancellable
	}
	return nil
}

func (r *repository) MarkCompleted(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ? AND status = ?", id, StatusConfirmed).
		Updates(map[string]interface{}{"status": StatusCompleted, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotCompletable
	}
	return nil
}

func (r *repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// applyFilters narrows by reference or title search and by status ("all" or
// empty keeps every status)
func applyFilters(query *gorm.DB, search, status string) *gorm.DB {
	if search = strings.TrimSpace(strings.ToLower(search)); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(reference_code) LIKE ? OR LOWER(movie_title) LIKE ?", like, like)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	return query
}

func page(base *gorm.DB, limit, offset int) ([]Booking, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset = normalizePage(limit, offset)
	bookings := []Booking{}
	err := base.
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	return bookings, total, err
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
