package domain

// Preferences holds the user adjustable inputs of one profile
type Preferences struct {
	AvailableEffort float64            `json:"available_effort"`
	CharacterLevel  int                `json:"character_level"`
	LandSize        LandSize           `json:"land_size"`
	Prices          map[string]float64 `json:"prices"`
}

// DefaultPreferences returns the built-in defaults with a zero price for every crop
func DefaultPreferences(crops []Crop) Preferences {
	prices := make(map[string]float64, len(crops))
	for _, c := range crops {
		prices[c.Name] = DefaultPrice
	}
	return Preferences{
		AvailableEffort: DefaultAvailableEffort,
		CharacterLevel:  DefaultCharacterLevel,
		LandSize:        DefaultLandSize,
		Prices:          prices,
	}
}

// Price returns the price set for a crop, zero when none is known
func (p Preferences) Price(cropName string) float64 {
	return p.Prices[cropName]
}

// Clone returns a deep copy so callers can't mutate shared state
func (p Preferences) Clone() Preferences {
	prices := make(map[string]float64, len(p.Prices))
	for k, v := range p.Prices {
		prices[k] = v
	}
	p.Prices = prices
	return p
}

// PreferencesUpdate carries a partial update; nil fields are left untouched
type PreferencesUpdate struct {
	AvailableEffort *float64  `json:"available_effort,omitempty" validate:"omitempty,gte=0"`
	CharacterLevel  *int      `json:"character_level,omitempty" validate:"omitempty,gte=0"`
	LandSize        *LandSize `json:"land_size,omitempty" validate:"omitempty,landsize"`
}

// Empty reports whether the update changes nothing
func (u PreferencesUpdate) Empty() bool {
	return u.AvailableEffort == nil && u.CharacterLevel == nil && u.LandSize == nil
}
