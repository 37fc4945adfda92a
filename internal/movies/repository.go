package movies

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrMovieHasShowtimes = errors.New("movie still has scheduled showtimes")
)

type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	ListByStatus(ctx context.Context, status Status) ([]Movie, error)
	GetByID(ctx context.Context, id string) (*Movie, error)
	GetByIDs(ctx context.Context, ids []string) ([]Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// catalogue order is m1, m2, ..., m10 rather than lexical
func catalogueOrder(db *gorm.DB) *gorm.DB {
	return db.Order("length(id)").Order("id")
}

func (r *repository) List(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	err := catalogueOrder(r.db.WithContext(ctx)).Find(&movies).Error
	return movies, err
}

func (r *repository) ListByStatus(ctx context.Context, status Status) ([]Movie, error) {
	var movies []Movie
	err := catalogueOrder(r.db.WithContext(ctx).Where("status = ?", status)).Find(&movies).Error
	return movies, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Movie, error) {
	var movie Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Movie, error) {
	var movies []Movie
	if len(ids) == 0 {
		return movies, nil
	}
	err := catalogueOrder(r.db.WithContext(ctx).Where("id IN ?", ids)).Find(&movies).Error
	return movies, err
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *repository) Update(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Movie{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).Count(&count).Error
	return count, err
}
