package membership

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/shared/testutil"
	"cineplex/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*service, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t, &users.User{}, &Reward{}, &PointsTransaction{})
	require.NoError(t, db.Create(&[]users.User{
		{ID: "u1", Name: "Alex Chen", Email: "alex.chen@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive, MembershipTier: "Gold", PointsBalance: 2450, MemberSince: "2023-06-15", QRCode: "MEMBER-GOLD-1"},
		{ID: "u3", Name: "Staff Member", Email: "staff@galaxycinema.com", Password: "x", Role: users.RoleStaff, Status: users.StatusActive, MembershipTier: "Silver", PointsBalance: 150},
	}).Error)
	require.NoError(t, db.Create(&[]Reward{
		{ID: "r1", Name: "Free Movie Ticket", PointsCost: 500, Category: RewardTickets, Available: true},
		{ID: "r2", Name: "Large Popcorn Combo", PointsCost: 300, Category: RewardConcessions, Available: true},
		{ID: "r3", Name: "IMAX Upgrade", PointsCost: 200, Category: RewardTickets, Available: true},
		{ID: "r4", Name: "VIP Lounge Access", PointsCost: 400, Category: RewardExperiences, Available: true},
	}).Error)
	require.NoError(t, db.Model(&Reward{}).Where("id = ?", "r4").Update("available", false).Error)

	svc := NewService(NewRepository(db), users.NewRepository(db)).(*service)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, db
}

func TestService_GetMembership(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.GetMembership(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, TierGold, m.CurrentTier.Name)
	require.NotNil(t, m.NextTier)
	assert.Equal(t, TierPlatinum, m.NextTier.Name)
	assert.Equal(t, 4550, m.PointsToNext)
	assert.Equal(t, "2023-06-15", m.MemberSince)
	assert.Len(t, m.Tiers, 4)

	_, err = svc.GetMembership(context.Background(), "missing")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestService_ListRewards(t *testing.T) {
	svc, _ := newTestService(t)

	views, err := svc.ListRewards(context.Background(), "u3")
	require.NoError(t, err)
	require.Len(t, views, 4)
	assert.Equal(t, "r3", views[0].ID)
	assert.False(t, views[0].CanRedeem)
	assert.Equal(t, 0, views[0].RedeemableCount)

	views, err = svc.ListRewards(context.Background(), "u1")
	require.NoError(t, err)
	byID := map[string]RewardView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID["r2"].CanRedeem)
	assert.Equal(t, 8, byID["r2"].RedeemableCount)
	assert.False(t, byID["r4"].CanRedeem)

	anon, err := svc.ListRewards(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, anon[0].CanRedeem)
}

func TestService_Redeem(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Redeem(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, 1950, resp.PointsBalance)
	assert.Equal(t, TierGold, resp.Tier)
	assert.Regexp(t, `^RW-[0-9A-F]{8}$`, resp.VoucherCode)

	var user users.User
	require.NoError(t, db.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, 1950, user.PointsBalance)
	assert.Equal(t, "Gold", user.MembershipTier)

	history, err := svc.History(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, TransactionRedeemed, history[0].Type)
	assert.Equal(t, -500, history[0].Points)
	assert.Equal(t, "Redeemed: Free Movie Ticket", history[0].Description)

	_, err = svc.Redeem(ctx, "u3", "r3")
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = svc.Redeem(ctx, "u1", "r4")
	assert.ErrorIs(t, err, ErrRewardUnavailable)

	_, err = svc.Redeem(ctx, "u1", "r9")
	assert.ErrorIs(t, err, ErrRewardNotFound)
}

func TestService_AwardUpgradesTier(t *testing.T) {
	svc, db := newTestService(t)

	var result *AwardResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = svc.Award(tx, "u3", 900, "Booking - Neon Horizon", "b9")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1050, result.PointsBalance)
	assert.Equal(t, TierSilver, result.PreviousTier)
	assert.Equal(t, TierSilver, result.Tier)
	assert.False(t, result.Upgraded)

	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = svc.Award(tx, "u3", 2000, "Booking - Neon Horizon", "b10")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, TierGold, result.Tier)
	assert.True(t, result.Upgraded)

	var user users.User
	require.NoError(t, db.First(&user, "id = ?", "u3").Error)
	assert.Equal(t, 3050, user.PointsBalance)
	assert.Equal(t, "Gold", user.MembershipTier)
}

func TestService_ReverseNeverDowngradesOrOverdraws(t *testing.T) {
	svc, db := newTestService(t)

	var taken int
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		taken, err = svc.Reverse(tx, "u3", 400, "Cancelled booking", "b1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 150, taken)

	var user users.User
	require.NoError(t, db.First(&user, "id = ?", "u3").Error)
	assert.Equal(t, 0, user.PointsBalance)
	assert.Equal(t, "Silver", user.MembershipTier)
}
