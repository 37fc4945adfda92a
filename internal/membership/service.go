package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cineplex/internal/users"
	"cineplex/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

type Service interface {
	GetMembership(ctx context.Context, userID string) (*MembershipResponse, error)
	ListRewards(ctx context.Context, userID string) ([]RewardView, error)
	Redeem(ctx context.Context, userID, rewardID string) (*RedeemResponse, error)
	History(ctx context.Context, userID string, limit int) ([]PointsTransaction, error)

	// Award credits points inside a checkout transaction and moves the
	// member up a tier when the new balance crosses a threshold.
	Award(tx *gorm.DB, userID string, points int, description string, bookingID string) (*AwardResult, error)
	// Reverse takes back points earned by a cancelled booking, never more
	// than the member still holds. The tier is kept.
	Reverse(tx *gorm.DB, userID string, points int, description string, bookingID string) (int, error)
}

type service struct {
	repo  Repository
	users users.Repository
	now   func() time.Time
	log   *logger.Logger
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, users: userRepo, now: time.Now, log: logger.GetDefault()}
}

func (s *service) GetMembership(ctx context.Context, userID string) (*MembershipResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &MembershipResponse{
		UserID:      user.ID,
		Name:        user.Name,
		MemberSince: user.MemberSince,
		QRCode:      user.QRCode,
		Progress:    Derive(user.MembershipTier, user.PointsBalance),
		Tiers:       Tiers(),
	}, nil
}

func (s *service) ListRewards(ctx context.Context, userID string) ([]RewardView, error) {
	rewards, err := s.repo.ListRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	balance := 0
	if userID != "" {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		balance = user.PointsBalance
	}

	views := make([]RewardView, len(rewards))
	for i, reward := range rewards {
		views[i] = RewardView{
			Reward:          reward,
			CanRedeem:       reward.Available && CanRedeem(balance, reward.PointsCost),
			RedeemableCount: RedeemableCount(balance, reward.PointsCost),
		}
	}
	return views, nil
}

func (s *service) Redeem(ctx context.Context, userID, rewardID string) (*RedeemResponse, error) {
	reward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.Available {
		return nil, ErrRewardUnavailable
	}

	var resp *RedeemResponse
	err = s.users.Transaction(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		if !CanRedeem(user.PointsBalance, reward.PointsCost) {
			return ErrInsufficientPoints
		}

		if err := s.users.AdjustPoints(tx, userID, -reward.PointsCost, user.MembershipTier); err != nil {
			if errors.Is(err, users.ErrInsufficientBalance) {
				return ErrInsufficientPoints
			}
			return err
		}

		rid := reward.ID
		if err := s.repo.RecordTransaction(tx, &PointsTransaction{
			ID:          uuid.New().String(),
			UserID:      userID,
			Type:        TransactionRedeemed,
			Points:      -reward.PointsCost,
			Description: "Redeemed: " + reward.Name,
			RewardID:    &rid,
			CreatedAt:   s.now(),
		}); err != nil {
			return err
		}

		resp = &RedeemResponse{
			Reward:        *reward,
			VoucherCode:   voucherCode(),
			PointsSpent:   reward.PointsCost,
			PointsBalance: user.PointsBalance - reward.PointsCost,
			Tier:          TierOrDefault(user.MembershipTier).Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reward redeemed", "user_id", userID, "reward_id", rewardID, "points", reward.PointsCost)
	return resp, nil
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]PointsTransaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.History(ctx, userID, limit)
}

func (s *service) Award(tx *gorm.DB, userID string, points int, description string, bookingID string) (*AwardResult, error) {
	user, err := lockUser(tx, userID)
	if err != nil {
		return nil, err
	}

	previous := TierOrDefault(user.MembershipTier).Name
	balance := user.PointsBalance + points
	tier := Upgrade(user.MembershipTier, balance)

	if err := s.users.AdjustPoints(tx, userID, points, string(tier)); err != nil {
		return nil, err
	}

	if points > 0 {
		if err := s.repo.RecordTransaction(tx, &PointsTransaction{
			ID:          uuid.New().String(),
			UserID:      userID,
			Type:        TransactionEarned,
			Points:      points,
			Description: description,
			BookingID:   optional(bookingID),
			CreatedAt:   s.now(),
		}); err != nil {
			return nil, err
		}
	}

	if tier != previous {
		s.log.Info("membership tier upgraded", "user_id", userID, "from", previous, "to", tier, "points", balance)
	}

	return &AwardResult{
		PointsEarned:  points,
		PointsBalance: balance,
		PreviousTier:  previous,
		Tier:          tier,
		Upgraded:      tier != previous,
	}, nil
}

func (s *service) Reverse(tx *gorm.DB, userID string, points int, description string, bookingID string) (int, error) {
	if points <= 0 {
		return 0, nil
	}
	user, err := lockUser(tx, userID)
	if err != nil {
		return 0, err
	}

	taken := points
	if user.PointsBalance < taken {
		taken = user.PointsBalance
	}
	if taken == 0 {
		return 0, nil
	}

	if err := s.users.AdjustPoints(tx, userID, -taken, user.MembershipTier); err != nil {
		return 0, err
	}
	if err := s.repo.RecordTransaction(tx, &PointsTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Type:        TransactionReversed,
		Points:      -taken,
		Description: description,
		BookingID:   optional(bookingID),
		CreatedAt:   s.now(),
	}); err != nil {
		return 0, err
	}
	return taken, nil
}

// lockUser reads the member through the transaction handle
func lockUser(tx *gorm.DB, userID string) (*users.User, error) {
	var user users.User
	if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func voucherCode() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "RW-" + strings.ToUpper(id[:8])
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
