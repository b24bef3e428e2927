package referral

import (
	"testing"

	"github.com/refledgerhq/refledger/app/models"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		total int64
		want  string
	}{
		{total: 0, want: models.TierBronze},
		{total: 1, want: models.TierBronze},
		{total: 2, want: models.TierBronze},
		{total: 3, want: models.TierSilver},
		{total: 9, want: models.TierSilver},
		{total: 10, want: models.TierGold},
		{total: 24, want: models.TierGold},
		{total: 25, want: models.TierPlatinum},
		{total: 1000, want: models.TierPlatinum},
	}

	for _, tt := range tests {
		if got := TierFor(tt.total); got != tt.want {
			t.Fatalf("TierFor(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestTierForIsMonotonic(t *testing.T) {
	prev := 0
	for total := int64(0); total <= 100; total++ {
		rank := TierRank(TierFor(total))
		if rank < prev {
			t.Fatalf("tier rank decreased at total=%d", total)
		}
		prev = rank
	}
}

func TestTierRankOrdering(t *testing.T) {
	if TierRank(models.TierBronze) >= TierRank(models.TierSilver) {
		t.Fatal("expected silver to outrank bronze")
	}
	if TierRank(models.TierSilver) >= TierRank(models.TierGold) {
		t.Fatal("expected gold to outrank silver")
	}
	if TierRank(models.TierGold) >= TierRank(models.TierPlatinum) {
		t.Fatal("expected platinum to outrank gold")
	}
}

func TestHighestTierNeverDowngrades(t *testing.T) {
	if got := HighestTier(models.TierGold, models.TierSilver); got != models.TierGold {
		t.Fatalf("HighestTier = %q, want gold", got)
	}
	if got := HighestTier(models.TierSilver, models.TierGold); got != models.TierGold {
		t.Fatalf("HighestTier = %q, want gold", got)
	}
}

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "bronze", want: models.TierBronze},
		{in: "SILVER", want: models.TierSilver},
		{in: " gold ", want: models.TierGold},
		{in: "platinum", want: models.TierPlatinum},
		{in: "invalid", want: models.TierBronze},
		{in: "", want: models.TierBronze},
	}

	for _, tt := range tests {
		if got := NormalizeTier(tt.in); got != tt.want {
			t.Fatalf("NormalizeTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
