package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Profile error messages
	ErrMsgInvalidProfile = "Invalid profile. Use 1-64 letters, digits, '-' or '_'."

	// Farm error messages
	ErrMsgGetRankingFailed = "Failed to compute crop ranking"
	ErrMsgGetDetailFailed  = "Failed to compute crop detail"
	ErrMsgMissingCropName  = "Missing crop name"

	// Preference error messages
	ErrMsgGetPreferencesFailed    = "Failed to load preferences"
	ErrMsgUpdatePreferencesFailed = "Failed to update preferences"
	ErrMsgEmptyUpdate             = "Nothing to update. Send available_effort, character_level or land_size."

	// Price error messages
	ErrMsgSetPriceFailed  = "Failed to set price"
	ErrMsgGetPricesFailed = "Failed to load prices"
	ErrMsgInvalidPrice    = "Price must be a number"
)

// Success messages for API responses
const (
	MsgPriceUpdatedSuccess       = "Price updated"
	MsgPreferencesUpdatedSuccess = "Preferences updated"
)
