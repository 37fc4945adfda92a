package membership

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRewardUnavailable  = errors.New("reward is not available")
	ErrInsufficientPoints = errors.New("not enough points to redeem this reward")
)

type Repository interface {
	ListRewards(ctx context.Context) ([]Reward, error)
	GetReward(ctx context.Context, id string) (*Reward, error)
	RecordTransaction(tx *gorm.DB, txn *PointsTransaction) error
	History(ctx context.Context, userID string, limit int) ([]PointsTransaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRewards(ctx context.Context) ([]Reward, error) {
	var rewards []Reward
	err := r.db.WithContext(ctx).Order("points_cost ASC, id ASC").Find(&rewards).Error
	return rewards, err
}

func (r *repository) GetReward(ctx context.Context, id string) (*Reward, error) {
	var reward Reward
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *repository) RecordTransaction(tx *gorm.DB, txn *PointsTransaction) error {
	return tx.Create(txn).Error
}

func (r *repository) History(ctx context.Context, userID string, limit int) ([]PointsTransaction, error) {
	var history []PointsTransaction
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&history).Error
	return history, err
}
