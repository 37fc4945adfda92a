package membership

import "time"

type RewardCategory string

const (
	RewardTickets     RewardCategory = "tickets"
	RewardConcessions RewardCategory = "concessions"
	RewardExperiences RewardCategory = "experiences"
)

type Reward struct {
	ID          string         `json:"id" gorm:"primaryKey;size:20"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	PointsCost  int            `json:"points_cost" gorm:"not null;check:points_cost > 0"`
	Category    RewardCategory `json:"category" gorm:"size:20;index"`
	ImageURL    string         `json:"image_url"`
	Available   bool           `json:"available" gorm:"not null;default:true"`
}

func (Reward) TableName() string { return "rewards" }

type TransactionType string

const (
	TransactionEarned   TransactionType = "earned"
	TransactionRedeemed TransactionType = "redeemed"
	TransactionBonus    TransactionType = "bonus"
	TransactionReversed TransactionType = "reversed"
)

// PointsTransaction is one line of a member's points history
type PointsTransaction struct {
	ID          string          `json:"id" gorm:"primaryKey;size:64"`
	UserID      string          `json:"user_id" gorm:"size:64;not null;index"`
	Type        TransactionType `json:"type" gorm:"size:20;not null"`
	Points      int             `json:"points" gorm:"not null"`
	Description string          `json:"description"`
	BookingID   *string         `json:"booking_id,omitempty" gorm:"size:64"`
	RewardID    *string         `json:"reward_id,omitempty" gorm:"size:20"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
}

func (PointsTransaction) TableName() string { return "points_transactions" }
