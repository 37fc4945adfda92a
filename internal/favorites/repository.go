package favorites

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFavorite = errors.New("movie is not in favorites")

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Exists(ctx context.Context, userID, movieID string) (bool, error)
	// Add inserts the pair and reports false when it was already there
	Add(ctx context.Context, favorite *Favorite) (bool, error)
	Remove(ctx context.Context, userID, movieID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListByUser returns the member's favorites with their movies, newest first
func (r *repository) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	var favorites []Favorite
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("movie_id").
		Find(&favorites).Error
	return favorites, err
}

func (r *repository) Exists(ctx context.Context, userID, movieID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Add(ctx context.Context, favorite *Favorite) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Remove(ctx context.Context, userID, movieID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFavorite
	}
	return nil
}
