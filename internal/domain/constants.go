package domain

// Land size categories
const (
	LandSizeSmall  LandSize = "small"
	LandSizeMedium LandSize = "medium"
	LandSizeLarge  LandSize = "large"
)

// Plot capacities per land size. Trees occupy more room than regular crops,
// so each land size fits fewer of them.
const (
	RegularPlotsSmall  = 28
	RegularPlotsMedium = 79
	RegularPlotsLarge  = 151

	TreePlotsSmall  = 10
	TreePlotsMedium = 26
	TreePlotsLarge  = 48
)

// Preference defaults applied when nothing is stored for a key
const (
	DefaultAvailableEffort = 5000.0
	DefaultCharacterLevel  = 50
	DefaultLandSize        = LandSizeMedium
	DefaultPrice           = 0.0
)

// DefaultProfile is used when a caller does not identify itself
const DefaultProfile = "default"

// Ineligibility reasons reported alongside a ranked crop
const (
	ReasonLevel  = "level"
	ReasonEffort = "effort"
)
