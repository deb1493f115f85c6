package farm

import (
	"sort"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

// IsEligible reports whether the player can plant the crop over the whole land
func IsEligible(crop domain.Crop, stats domain.FarmStats, level int, availableEffort float64) bool {
	return len(blockers(crop, stats, level, availableEffort)) == 0
}

func blockers(crop domain.Crop, stats domain.FarmStats, level int, availableEffort float64) []string {
	var reasons []string
	if crop.LevelRequirement > level {
		reasons = append(reasons, domain.ReasonLevel)
	}
	if stats.EffortRequired > availableEffort {
		reasons = append(reasons, domain.ReasonEffort)
	}
	return reasons
}

// Rank orders crops for display: eligible crops first, then by descending profit per hour.
// Crops that tie keep their catalog order. The input slice is not modified.
func Rank(crops []domain.Crop, prefs domain.Preferences) []domain.RankedCrop {
	ranked := make([]domain.RankedCrop, len(crops))
	for i, c := range crops {
		price := prefs.Price(c.Name)
		stats := ComputeStats(c, prefs.LandSize, price)
		reasons := blockers(c, stats, prefs.CharacterLevel, prefs.AvailableEffort)
		ranked[i] = domain.RankedCrop{
			Crop:     c,
			Price:    price,
			Eligible: len(reasons) == 0,
			Blockers: reasons,
			Stats:    stats,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

func less(a, b domain.RankedCrop) bool {
	if a.Eligible != b.Eligible {
		return a.Eligible
	}
	return a.Stats.ProfitPerHour > b.Stats.ProfitPerHour
}
