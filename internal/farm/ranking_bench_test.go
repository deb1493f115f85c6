package farm

import (
	"fmt"
	"testing"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

func BenchmarkRank(b *testing.B) {
	crops := make([]domain.Crop, 0, 64)
	prices := make(map[string]float64, 64)
	for i := 0; i < 64; i++ {
		name := fmt.Sprintf("crop_%02d", i)
		crops = append(crops, domain.Crop{
			Name:             name,
			LevelRequirement: i,
			MinYield:         float64(i % 7),
			MaxYield:         float64(i%7 + 3),
			EffortCost:       float64(i%5 + 1),
			HarvestTimeHours: float64(i%12 + 1),
			ExperienceReward: float64(i),
			IsTree:           i%4 == 0,
		})
		prices[name] = float64(i%9) * 1.5
	}
	prefs := domain.Preferences{
		AvailableEffort: 5000,
		CharacterLevel:  40,
		LandSize:        domain.LandSizeLarge,
		Prices:          prices,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Rank(crops, prefs)
	}
}
