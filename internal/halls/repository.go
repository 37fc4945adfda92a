package halls

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrHallNotFound = errors.New("hall not found")
	ErrSeatNotFound = errors.New("seat not found")
)

type Repository interface {
	ListCinemas(ctx context.Context) ([]Cinema, error)
	ListHalls(ctx context.Context) ([]Hall, error)
	GetHall(ctx context.Context, id string) (*Hall, error)
	UpdateHallStatus(ctx context.Context, id string, status Status) error

	GetSeatsByHall(ctx context.Context, hallID string) ([]Seat, error)
	GetSeatsByIDs(ctx context.Context, ids []string) ([]Seat, error)
	CountSeatsByHall(ctx context.Context, hallID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCinemas(ctx context.Context) ([]Cinema, error) {
	var cinemas []Cinema
	err := r.db.WithContext(ctx).
		Preload("Halls", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&cinemas).Error
	return cinemas, err
}

func (r *repository) ListHalls(ctx context.Context) ([]Hall, error) {
	var halls []Hall
	err := r.db.WithContext(ctx).Order("id").Find(&halls).Error
	return halls, err
}

func (r *repository) GetHall(ctx context.Context, id string) (*Hall, error) {
	var hall Hall
	if err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return &hall, nil
}

func (r *repository) UpdateHallStatus(ctx context.Context, id string, status Status) error {
	result := r.db.WithContext(ctx).Model(&Hall{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHallNotFound
	}
	return nil
}

func (r *repository) GetSeatsByHall(ctx context.Context, hallID string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("grid_y, grid_x").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetSeatsByIDs(ctx context.Context, ids []string) ([]Seat, error) {
	var seats []Seat
	if len(ids) == 0 {
		return seats, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("grid_y, grid_x").Find(&seats).Error
	return seats, err
}

func (r *repository) CountSeatsByHall(ctx context.Context, hallID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seat{}).Where("hall_id = ?", hallID).Count(&count).Error
	return count, err
}
