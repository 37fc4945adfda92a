package concessions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound      = errors.New("concession item not found")
	ErrItemUnavailable   = errors.New("concession item is not available")
	ErrInsufficientStock = errors.New("not enough stock")
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	DecrementStock(tx *gorm.DB, id string, qty int) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).Order("length(id)").Order("id").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Item, error) {
	var items []Item
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) Update(ctx context.Context, item *Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DecrementStock takes qty units off an available item. The guarded update
// fails with ErrInsufficientStock instead of going negative.
func (r *repository) DecrementStock(tx *gorm.DB, id string, qty int) error {
	result := tx.Model(&Item{}).
		Where("id = ? AND is_available = ? AND stock_level >= ?", id, true, qty).
		Update("stock_level", gorm.Expr("stock_level - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, id)
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Item{}).Count(&count).Error
	return count, err
}
