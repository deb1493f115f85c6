package domain

import (
	"encoding/json"
	"math"
)

// FarmStats are the per-crop figures used to rank crops
type FarmStats struct {
	PlotCount            int     `json:"plot_count"`
	BaseYield            float64 `json:"base_yield"`
	EffectiveHarvestTime float64 `json:"effective_harvest_time_hours"`
	ProfitPerHour        float64 `json:"profit_per_hour"`
	XPPerHour            float64 `json:"xp_per_hour"`
	EffortRequired       float64 `json:"effort_required"`
}

// RankedCrop is one entry of the ordered crop list
type RankedCrop struct {
	Position int       `json:"position"`
	Crop     Crop      `json:"crop"`
	Price    float64   `json:"price"`
	Eligible bool      `json:"eligible"`
	Blockers []string  `json:"blockers,omitempty"`
	Stats    FarmStats `json:"stats"`
}

// CropDetail is the full cost and revenue breakdown of a single crop
type CropDetail struct {
	Crop     Crop     `json:"crop"`
	LandSize LandSize `json:"land_size"`
	Price    float64  `json:"price"`

	AverageYield         float64 `json:"average_yield"`
	BaseYield            float64 `json:"base_yield"`
	PlotCount            int     `json:"plot_count"`
	EffectiveHarvestTime float64 `json:"effective_harvest_time_hours"`
	EffortRequired       float64 `json:"effort_required"`

	PlantingCostPerUnit     float64 `json:"planting_cost_per_unit"`
	TotalPlantingCost       float64 `json:"total_planting_cost"`
	GrossRevenuePerPlanting float64 `json:"gross_revenue_per_planting"`
	GrossRevenueTotal       float64 `json:"gross_revenue_total"`
	MarketFee               float64 `json:"market_fee"`
	NetProfitTotal          float64 `json:"net_profit_total"`
	NetProfitPerPlanting    float64 `json:"net_profit_per_planting"`

	ProfitPerHour float64 `json:"profit_per_hour"`
	XPPerHour     float64 `json:"xp_per_hour"`

	// ReturnOnInvestment is a percentage. It is non-finite when the planting cost is zero.
	ReturnOnInvestment float64 `json:"-"`
}

// ROIDefined reports whether the return on investment is a finite number
func (d CropDetail) ROIDefined() bool {
	return !math.IsInf(d.ReturnOnInvestment, 0) && !math.IsNaN(d.ReturnOnInvestment)
}

// MarshalJSON renders a non-finite return on investment as null, since JSON has no Inf or NaN
func (d CropDetail) MarshalJSON() ([]byte, error) {
	type plain CropDetail
	out := struct {
		plain
		ReturnOnInvestment *float64 `json:"return_on_investment"`
		ROIDefined         bool     `json:"roi_defined"`
	}{plain: plain(d)}
	if d.ROIDefined() {
		roi := d.ReturnOnInvestment
		out.ReturnOnInvestment = &roi
		out.ROIDefined = true
	}
	return json.Marshal(out)
}
