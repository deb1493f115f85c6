package domain

import (
	"fmt"
	"strings"
)

// LandSize is the size category of a player's land plot
type LandSize string

// LandSizes lists every land size in ascending order
var LandSizes = []LandSize{LandSizeSmall, LandSizeMedium, LandSizeLarge}

var regularCapacity = map[LandSize]int{
	LandSizeSmall:  RegularPlotsSmall,
	LandSizeMedium: RegularPlotsMedium,
	LandSizeLarge:  RegularPlotsLarge,
}

var treeCapacity = map[LandSize]int{
	LandSizeSmall:  TreePlotsSmall,
	LandSizeMedium: TreePlotsMedium,
	LandSizeLarge:  TreePlotsLarge,
}

// ParseLandSize converts user input to a LandSize, ignoring case and surrounding space
func ParseLandSize(s string) (LandSize, error) {
	ls := LandSize(strings.ToLower(strings.TrimSpace(s)))
	if !ls.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLandSize, s)
	}
	return ls, nil
}

// Valid reports whether the land size is one of the known categories
func (l LandSize) Valid() bool {
	_, ok := regularCapacity[l]
	return ok
}

func (l LandSize) String() string {
	return string(l)
}

// PlotCount returns how many units fit on the land. Trees use their own table.
// Unknown land sizes have no plots.
func PlotCount(l LandSize, isTree bool) int {
	if isTree {
		return treeCapacity[l]
	}
	return regularCapacity[l]
}

// Crop is an immutable crop definition from the catalog
type Crop struct {
	Name             string  `json:"name" yaml:"name"`
	LevelRequirement int     `json:"level_requirement" yaml:"level"`
	MinYield         float64 `json:"min_yield" yaml:"min_yield"`
	MaxYield         float64 `json:"max_yield" yaml:"max_yield"`
	EffortCost       float64 `json:"effort_cost" yaml:"effort"`
	HarvestTimeHours float64 `json:"harvest_time_hours" yaml:"harvest_time_hours"`
	ExperienceReward float64 `json:"experience_reward" yaml:"xp"`
	PlantingCost     float64 `json:"planting_cost" yaml:"cost"`
	IsTree           bool    `json:"is_tree" yaml:"is_tree"`
	ImageRef         string  `json:"image_ref,omitempty" yaml:"image"`
}

// Validate checks the invariants every catalog entry must hold
func (c Crop) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidCrop)
	case c.LevelRequirement < 0:
		return fmt.Errorf("%w: %s: level requirement %d is negative", ErrInvalidCrop, c.Name, c.LevelRequirement)
	case c.MinYield > c.MaxYield:
		return fmt.Errorf("%w: %s: min yield %g exceeds max yield %g", ErrInvalidCrop, c.Name, c.MinYield, c.MaxYield)
	case c.HarvestTimeHours <= 0:
		return fmt.Errorf("%w: %s: harvest time must be positive, got %g", ErrInvalidCrop, c.Name, c.HarvestTimeHours)
	case c.EffortCost < 0, c.ExperienceReward < 0, c.PlantingCost < 0, c.MinYield < 0:
		return fmt.Errorf("%w: %s: %s", ErrInvalidCrop, c.Name, ErrMsgNegativeValue)
	}
	return nil
}
