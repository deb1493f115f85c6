package postgres

// Error Messages - Preference Operations
const (
	ErrMsgGetPreferenceFailed = "failed to read preference"
	ErrMsgSetPreferenceFailed = "failed to write preference"
)
