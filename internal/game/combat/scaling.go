package combat

// TierSize is the number of stat points in one tier.
const TierSize = 15

// Tiers returns the number of complete tiers in stat: floor(stat/15).
func Tiers(stat int) int {
	if stat <= 0 {
		return 0
	}
	return stat / TierSize
}

// Scaling returns base + perTier*Tiers(stat), a percentage.
//
// Postcondition: non-decreasing in stat when perTier >= 0.
func Scaling(stat, base, perTier int) int {
	return base + perTier*Tiers(stat)
}

// percentOf returns floor(v*pct/100) for non-negative operands.
func percentOf(v, pct int) int {
	return v * pct / 100
}
