package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		tier         string
		points       int
		wantNext     TierName
		wantProgress float64
		wantToNext   int
		wantMax      bool
	}{
		{"bronze start", "Bronze", 0, TierSilver, 0, 1000, false},
		{"bronze half", "Bronze", 500, TierSilver, 50, 500, false},
		{"silver mid", "Silver", 2000, TierGold, 50, 1000, false},
		{"gold from seed user", "Gold", 2450, TierPlatinum, 0, 4550, false},
		{"over threshold clamps", "Silver", 5000, TierGold, 100, 0, false},
		{"platinum is max", "Platinum", 10000, "", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(tt.tier, tt.points)
			assert.Equal(t, tt.wantMax, p.IsMaxTier)
			assert.InDelta(t, tt.wantProgress, p.ProgressPercent, 0.001)
			assert.Equal(t, tt.wantToNext, p.PointsToNext)
			if tt.wantMax {
				assert.Nil(t, p.NextTier)
			} else {
				require.NotNil(t, p.NextTier)
				assert.Equal(t, tt.wantNext, p.NextTier.Name)
			}
			assert.Len(t, p.Multipliers, 4)
		})
	}
}

func TestDerive_UnknownTierFallsBackToBronze(t *testing.T) {
	p := Derive("Diamond", 100)
	assert.Equal(t, TierBronze, p.CurrentTier.Name)
	require.NotNil(t, p.NextTier)
	assert.Equal(t, TierSilver, p.NextTier.Name)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	tier, ok := Lookup("gold")
	require.True(t, ok)
	assert.Equal(t, TierGold, tier.Name)

	_, ok = Lookup("diamond")
	assert.False(t, ok)
}

func TestTierForPoints(t *testing.T) {
	assert.Equal(t, TierBronze, TierForPoints(999).Name)
	assert.Equal(t, TierSilver, TierForPoints(1000).Name)
	assert.Equal(t, TierGold, TierForPoints(3000).Name)
	assert.Equal(t, TierPlatinum, TierForPoints(7000).Name)
}

func TestUpgrade_NeverDowngrades(t *testing.T) {
	assert.Equal(t, TierSilver, Upgrade("Bronze", 1200))
	assert.Equal(t, TierGold, Upgrade("Gold", 10))
	assert.Equal(t, TierPlatinum, Upgrade("Gold", 7500))
}

func TestDiscountsAndRedemption(t *testing.T) {
	assert.InDelta(t, 10.0, DiscountAmount("Gold", 100), 0.0001)
	assert.Zero(t, DiscountAmount("Bronze", 100))
	assert.True(t, CanRedeem(500, 500))
	assert.False(t, CanRedeem(499, 500))
	assert.Equal(t, 8, RedeemableCount(2450, 300))
	assert.Equal(t, 0, RedeemableCount(2450, 0))
}
