package referral

import (
	"strings"

	"github.com/refledgerhq/refledger/app/models"
)

// TierThreshold maps a minimum cumulative referral count to a tier name.
type TierThreshold struct {
	Min  int64
	Tier string
}

// Thresholds are strictly increasing; every non-negative total resolves to
// exactly one tier, the highest threshold not exceeding it.
var thresholds = []TierThreshold{
	{Min: 0, Tier: models.TierBronze},
	{Min: 3, Tier: models.TierSilver},
	{Min: 10, Tier: models.TierGold},
	{Min: 25, Tier: models.TierPlatinum},
}

// TierFor resolves a cumulative referral total to its tier.
func TierFor(total int64) string {
	tier := models.TierBronze
	for _, th := range thresholds {
		if total >= th.Min {
			tier = th.Tier
		}
	}
	return tier
}

// TierRank orders tiers so they can be compared.
func TierRank(tier string) int {
	switch NormalizeTier(tier) {
	case models.TierPlatinum:
		return 3
	case models.TierGold:
		return 2
	case models.TierSilver:
		return 1
	default:
		return 0
	}
}

// HighestTier returns whichever of the two tiers ranks higher. Used to keep
// a referrer's tier from ever going backwards.
func HighestTier(a, b string) string {
	if TierRank(b) > TierRank(a) {
		return b
	}
	return a
}

// NormalizeTier folds arbitrary input onto a known tier name, defaulting
// to bronze.
func NormalizeTier(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case models.TierSilver:
		return models.TierSilver
	case models.TierGold:
		return models.TierGold
	case models.TierPlatinum:
		return models.TierPlatinum
	default:
		return models.TierBronze
	}
}
