package farm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

const delta = 1e-9

func testCrop() domain.Crop {
	return domain.Crop{
		Name:             "Test Crop",
		MinYield:         10,
		MaxYield:         10,
		EffortCost:       1,
		HarvestTimeHours: 4,
		ExperienceReward: 20,
		PlantingCost:     5,
	}
}

func TestComputeStats_RegularCrop(t *testing.T) {
	stats := ComputeStats(testCrop(), domain.LandSizeMedium, 10)

	assert.Equal(t, 79, stats.PlotCount)
	assert.InDelta(t, 10.0, stats.BaseYield, delta)
	assert.InDelta(t, 4.0, stats.EffectiveHarvestTime, delta)
	assert.InDelta(t, 1896.0, stats.ProfitPerHour, delta)
	assert.InDelta(t, 395.0, stats.XPPerHour, delta)
	assert.InDelta(t, 79.0, stats.EffortRequired, delta)
}

func TestComputeStats_TreeCrop(t *testing.T) {
	tree := testCrop()
	tree.IsTree = true

	stats := ComputeStats(tree, domain.LandSizeMedium, 10)

	assert.Equal(t, 26, stats.PlotCount)
	assert.InDelta(t, 30.0, stats.BaseYield, delta)
	assert.InDelta(t, 12.0, stats.EffectiveHarvestTime, delta)
	assert.InDelta(t, 624.0, stats.ProfitPerHour, delta)
	assert.InDelta(t, 130.0, stats.XPPerHour, delta)
	assert.InDelta(t, 26.0, stats.EffortRequired, delta)
}

func TestComputeStats_ZeroPrice(t *testing.T) {
	stats := ComputeStats(testCrop(), domain.LandSizeLarge, 0)

	assert.Zero(t, stats.ProfitPerHour)
	assert.InDelta(t, 20.0*151/4, stats.XPPerHour, delta)
}

func TestComputeStats_TreeMultiplier(t *testing.T) {
	for _, ls := range domain.LandSizes {
		t.Run(ls.String(), func(t *testing.T) {
			tree := testCrop()
			tree.IsTree = true
			tree.HarvestTimeHours = 7.5

			stats := ComputeStats(tree, ls, 3)

			assert.Equal(t, 3*tree.HarvestTimeHours, stats.EffectiveHarvestTime)
			assert.Equal(t, domain.PlotCount(ls, true), stats.PlotCount)
			assert.NotEqual(t, domain.PlotCount(ls, false), stats.PlotCount)
		})
	}
}

func TestComputeStats_FiniteForAllCatalogShapes(t *testing.T) {
	crops := []domain.Crop{
		{Name: "tiny", MinYield: 0, MaxYield: 0, HarvestTimeHours: 0.1},
		{Name: "huge", MinYield: 1e6, MaxYield: 2e6, EffortCost: 1e3, HarvestTimeHours: 1e-3, ExperienceReward: 1e6},
		{Name: "tree", MinYield: 1, MaxYield: 9, HarvestTimeHours: 48, ExperienceReward: 3, IsTree: true},
	}
	prices := []float64{0, 0.01, 1, 12345.678}

	for _, c := range crops {
		require.NoError(t, c.Validate())
		for _, ls := range domain.LandSizes {
			for _, p := range prices {
				stats := ComputeStats(c, ls, p)
				assert.False(t, math.IsInf(stats.ProfitPerHour, 0) || math.IsNaN(stats.ProfitPerHour),
					"profit not finite for %s/%s/%v", c.Name, ls, p)
				assert.False(t, math.IsInf(stats.XPPerHour, 0) || math.IsNaN(stats.XPPerHour),
					"xp not finite for %s/%s/%v", c.Name, ls, p)
			}
		}
	}
}

func TestComputeStats_DoesNotMutateInput(t *testing.T) {
	crop := testCrop()
	crop.IsTree = true
	before := crop

	_ = ComputeStats(crop, domain.LandSizeSmall, 4)
	_ = ComputeDetail(crop, domain.LandSizeSmall, 4)

	assert.Equal(t, before, crop)
}

func TestComputeDetail(t *testing.T) {
	d := ComputeDetail(testCrop(), domain.LandSizeMedium, 10)

	assert.InDelta(t, 10.0, d.AverageYield, delta)
	assert.InDelta(t, 5.0, d.PlantingCostPerUnit, delta)
	assert.InDelta(t, 395.0, d.TotalPlantingCost, delta)
	assert.InDelta(t, 100.0, d.GrossRevenuePerPlanting, delta)
	assert.InDelta(t, 7900.0, d.GrossRevenueTotal, delta)
	assert.InDelta(t, 316.0, d.MarketFee, delta)
	assert.InDelta(t, 7189.0, d.NetProfitTotal, delta)
	assert.InDelta(t, 91.0, d.NetProfitPerPlanting, delta)
	assert.InDelta(t, 7189.0/4, d.ProfitPerHour, delta)
	assert.InDelta(t, 395.0, d.XPPerHour, delta)
	assert.InDelta(t, 7189.0/395*100, d.ReturnOnInvestment, 1e-6)
	assert.True(t, d.ROIDefined())
}

func TestComputeDetail_TreeUsesTripledYieldAndTime(t *testing.T) {
	tree := testCrop()
	tree.IsTree = true

	d := ComputeDetail(tree, domain.LandSizeSmall, 2)

	assert.Equal(t, 10, d.PlotCount)
	assert.InDelta(t, 10.0, d.AverageYield, delta)
	assert.InDelta(t, 30.0, d.BaseYield, delta)
	assert.InDelta(t, 12.0, d.EffectiveHarvestTime, delta)
	assert.InDelta(t, 600.0, d.GrossRevenueTotal, delta)
}

func TestComputeDetail_ZeroPlantingCostLeavesROIUndefined(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		check func(*testing.T, float64)
	}{
		{
			name:  "positive profit",
			price: 10,
			check: func(t *testing.T, roi float64) { assert.True(t, math.IsInf(roi, 1)) },
		},
		{
			name:  "zero profit",
			price: 0,
			check: func(t *testing.T, roi float64) { assert.True(t, math.IsNaN(roi)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crop := testCrop()
			crop.PlantingCost = 0

			d := ComputeDetail(crop, domain.LandSizeMedium, tt.price)

			assert.Zero(t, d.TotalPlantingCost)
			assert.False(t, d.ROIDefined())
			tt.check(t, d.ReturnOnInvestment)
		})
	}
}
