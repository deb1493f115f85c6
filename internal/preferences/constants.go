package preferences

// Storage keys. One key per value, flat string values.
const (
	KeyTotalEffort = "totalEffort"
	KeyLandSize    = "landSize"
	KeyFarmLevel   = "farmLevel"
	PriceKeyPrefix = "farm_price_"

	// LegacyKeyFarmLevel is read when KeyFarmLevel is absent. Older clients wrote it in lower case.
	LegacyKeyFarmLevel = "farmlevel"
)

// Log messages
const (
	LogMsgReadFailed      = "Failed to read preference, using default"
	LogMsgParseFailed     = "Stored preference is not valid, using default"
	LogMsgWriteFailed     = "Failed to persist preference"
	LogMsgSeeded          = "Seeded default crop prices"
	LogMsgLegacyLevelUsed = "Using legacy farm level key"
)

// Error messages
const (
	ErrMsgSeedReadFailed  = "failed to read price %s during seeding: %w"
	ErrMsgSeedWriteFailed = "failed to seed price %s: %w"
	ErrMsgUnknownSeedMode = "unknown price seed mode %q"
)
