package membership

import (
	"strings"

	"cineplex/pkg/logger"
)

type TierName string

const (
	TierBronze   TierName = "Bronze"
	TierSilver   TierName = "Silver"
	TierGold     TierName = "Gold"
	TierPlatinum TierName = "Platinum"
)

// Tier is one row of the loyalty table
type Tier struct {
	Name             TierName `json:"name"`
	PointsRequired   int      `json:"points_required"`
	PointsMultiplier float64  `json:"points_multiplier"`
	DiscountPercent  float64  `json:"discount_percent"`
	Benefits         []string `json:"benefits"`
	Color            string   `json:"color"`
}

// tiers is the single source of truth for thresholds and multipliers,
// ordered by PointsRequired.
var tiers = []Tier{
	{
		Name:             TierBronze,
		PointsRequired:   0,
		PointsMultiplier: 1.0,
		DiscountPercent:  0,
		Benefits:         []string{"Earn 1 point per RM1", "Birthday voucher", "Email updates"},
		Color:            "from-amber-700 to-amber-900",
	},
	{
		Name:             TierSilver,
		PointsRequired:   1000,
		PointsMultiplier: 1.2,
		DiscountPercent:  5,
		Benefits:         []string{"Earn 1.2 points per RM1", "5% discount", "Priority booking", "Free popcorn on birthday"},
		Color:            "from-gray-400 to-gray-600",
	},
	{
		Name:             TierGold,
		PointsRequired:   3000,
		PointsMultiplier: 1.5,
		DiscountPercent:  10,
		Benefits:         []string{"Earn 1.5 points per RM1", "10% discount", "Exclusive screenings", "Free combo on birthday"},
		Color:            "from-yellow-400 to-yellow-600",
	},
	{
		Name:             TierPlatinum,
		PointsRequired:   7000,
		PointsMultiplier: 2.0,
		DiscountPercent:  15,
		Benefits:         []string{"Earn 2 points per RM1", "15% discount", "VIP lounge access", "Complimentary upgrades"},
		Color:            "from-purple-400 to-purple-600",
	},
}

// Tiers returns a copy of the tier table
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

func indexOf(name string) int {
	for i, t := range tiers {
		if strings.EqualFold(string(t.Name), name) {
			return i
		}
	}
	return -1
}

// Lookup finds a tier by name, case-insensitively
func Lookup(name string) (Tier, bool) {
	if i := indexOf(name); i >= 0 {
		return tiers[i], true
	}
	return Tier{}, false
}

// TierOrDefault resolves a tier name, falling back to Bronze for unknown names
func TierOrDefault(name string) Tier {
	if t, ok := Lookup(name); ok {
		return t
	}
	logger.GetDefault().Warn("unknown membership tier, using default", "tier", name)
	return tiers[0]
}

// Multiplier returns the points multiplier for a tier name
func Multiplier(name string) float64 {
	return TierOrDefault(name).PointsMultiplier
}

// Multipliers returns the points multiplier table keyed by tier
func Multipliers() map[TierName]float64 {
	out := make(map[TierName]float64, len(tiers))
	for _, t := range tiers {
		out[t.Name] = t.PointsMultiplier
	}
	return out
}

// TierForPoints returns the highest tier whose threshold the balance meets
func TierForPoints(points int) Tier {
	current := tiers[0]
	for _, t := range tiers {
		if points >= t.PointsRequired {
			current = t
		}
	}
	return current
}

// Upgrade returns the tier a member should hold after their balance changed.
// Tiers never move down.
func Upgrade(currentTier string, points int) TierName {
	earned := TierForPoints(points)
	if indexOf(string(earned.Name)) > indexOf(currentTier) {
		return earned.Name
	}
	if t, ok := Lookup(currentTier); ok {
		return t.Name
	}
	return earned.Name
}

// Progress is the derived membership view for one member
type Progress struct {
	CurrentTier     Tier                 `json:"current_tier"`
	NextTier        *Tier                `json:"next_tier"`
	PointsBalance   int                  `json:"points_balance"`
	ProgressPercent float64              `json:"progress_percent"`
	PointsToNext    int                  `json:"points_to_next_tier"`
	IsMaxTier       bool                 `json:"is_max_tier"`
	Multipliers     map[TierName]float64 `json:"multipliers"`
}

// Derive computes next tier, progress and points-to-next for a member
func Derive(tierName string, points int) Progress {
	i := indexOf(tierName)
	if i < 0 {
		logger.GetDefault().Warn("unknown membership tier, using default", "tier", tierName)
		i = 0
	}
	current := tiers[i]

	p := Progress{
		CurrentTier:   current,
		PointsBalance: points,
		Multipliers:   Multipliers(),
	}

	if i == len(tiers)-1 {
		p.IsMaxTier = true
		p.ProgressPercent = 100
		return p
	}

	next := tiers[i+1]
	p.NextTier = &next

	span := float64(next.PointsRequired - current.PointsRequired)
	progress := float64(points-current.PointsRequired) / span * 100
	p.ProgressPercent = clamp(progress, 0, 100)

	if remaining := next.PointsRequired - points; remaining > 0 {
		p.PointsToNext = remaining
	}
	return p
}

// DiscountAmount is the member discount a tier earns on amount
func DiscountAmount(tierName string, amount float64) float64 {
	return amount * TierOrDefault(tierName).DiscountPercent / 100
}

// CanRedeem reports whether a balance covers a reward's cost
func CanRedeem(balance, cost int) bool {
	return balance >= cost
}

// RedeemableCount is how many times a reward of cost fits in balance
func RedeemableCount(balance, cost int) int {
	if cost <= 0 {
		return 0
	}
	return balance / cost
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
