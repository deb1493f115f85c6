package farm

// Market and tree constants
const (
	// MarketFeeRate is the share of gross revenue the market keeps
	MarketFeeRate = 0.04

	// TreeHarvestPasses is how many times a tree is harvested per cycle.
	// Yield, experience and harvest time of trees are all scaled by it.
	TreeHarvestPasses = 3

	// PercentMultiplier converts a ratio to a percentage
	PercentMultiplier = 100
)
