package membership

// MembershipResponse is the member card plus tier progress
type MembershipResponse struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	MemberSince string `json:"member_since"`
	QRCode      string `json:"qr_code"`
	Progress
	Tiers []Tier `json:"tiers"`
}

type RewardView struct {
	Reward
	CanRedeem       bool `json:"can_redeem"`
	RedeemableCount int  `json:"redeemable_count"`
}

type RedeemResponse struct {
	Reward        Reward   `json:"reward"`
	VoucherCode   string   `json:"voucher_code"`
	PointsSpent   int      `json:"points_spent"`
	PointsBalance int      `json:"points_balance"`
	Tier          TierName `json:"tier"`
}

type AwardResult struct {
	PointsEarned  int      `json:"points_earned"`
	PointsBalance int      `json:"points_balance"`
	PreviousTier  TierName `json:"previous_tier"`
	Tier          TierName `json:"tier"`
	Upgraded      bool     `json:"upgraded"`
}
