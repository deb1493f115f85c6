package farm

import "github.com/osse101/FarmCalc_Go/internal/domain"

// ComputeStats returns the ranking figures of a crop planted over the whole land.
// It is pure: the same inputs always give the same result.
func ComputeStats(crop domain.Crop, landSize domain.LandSize, price float64) domain.FarmStats {
	plots := domain.PlotCount(landSize, crop.IsTree)
	baseYield := baseYield(crop)
	harvestTime := effectiveHarvestTime(crop)

	netPerPlanting := baseYield * price * (1 - MarketFeeRate)

	return domain.FarmStats{
		PlotCount:            plots,
		BaseYield:            baseYield,
		EffectiveHarvestTime: harvestTime,
		ProfitPerHour:        netPerPlanting * float64(plots) / harvestTime,
		XPPerHour:            xpPerHour(crop, plots, harvestTime),
		EffortRequired:       EffortRequired(crop, landSize),
	}
}

// ComputeDetail returns the full breakdown shown for a single selected crop.
// Unlike ComputeStats it deducts the planting cost from the profit.
// ReturnOnInvestment is left non-finite when the planting cost is zero.
func ComputeDetail(crop domain.Crop, landSize domain.LandSize, price float64) domain.CropDetail {
	plots := domain.PlotCount(landSize, crop.IsTree)
	fPlots := float64(plots)
	harvestTime := effectiveHarvestTime(crop)

	d := domain.CropDetail{
		Crop:                 crop,
		LandSize:             landSize,
		Price:                price,
		AverageYield:         averageYield(crop),
		BaseYield:            baseYield(crop),
		PlotCount:            plots,
		EffectiveHarvestTime: harvestTime,
		EffortRequired:       EffortRequired(crop, landSize),
		PlantingCostPerUnit:  crop.PlantingCost,
		TotalPlantingCost:    crop.PlantingCost * fPlots,
	}

	d.GrossRevenuePerPlanting = d.BaseYield * price
	d.GrossRevenueTotal = d.GrossRevenuePerPlanting * fPlots
	d.MarketFee = d.GrossRevenueTotal * MarketFeeRate
	d.NetProfitTotal = d.GrossRevenueTotal - d.TotalPlantingCost - d.MarketFee
	d.NetProfitPerPlanting = d.NetProfitTotal / fPlots
	d.ProfitPerHour = d.NetProfitTotal / harvestTime
	d.XPPerHour = xpPerHour(crop, plots, harvestTime)
	d.ReturnOnInvestment = d.NetProfitTotal / d.TotalPlantingCost * PercentMultiplier

	return d
}

// EffortRequired is the effort needed to fill the land with the crop
func EffortRequired(crop domain.Crop, landSize domain.LandSize) float64 {
	return crop.EffortCost * float64(domain.PlotCount(landSize, crop.IsTree))
}

func averageYield(crop domain.Crop) float64 {
	return (crop.MinYield + crop.MaxYield) / 2
}

func baseYield(crop domain.Crop) float64 {
	return averageYield(crop) * treeFactor(crop)
}

// effectiveHarvestTime is the harvest time of one full cycle in hours
func effectiveHarvestTime(crop domain.Crop) float64 {
	return crop.HarvestTimeHours * treeFactor(crop)
}

func xpPerHour(crop domain.Crop, plots int, harvestTime float64) float64 {
	return crop.ExperienceReward * float64(plots) * treeFactor(crop) / harvestTime
}

func treeFactor(crop domain.Crop) float64 {
	if crop.IsTree {
		return TreeHarvestPasses
	}
	return 1
}
