package planner

import "time"

// Session cache defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
)

// MaxProfileLength bounds profile identifiers
const MaxProfileLength = 64

// Log messages
const (
	LogMsgSeedFailed      = "Failed to seed default prices, continuing with stored values"
	LogMsgSessionOpened   = "Opened preference session"
	LogMsgPublishFailed   = "Failed to publish planner event"
	LogMsgRankingComputed = "Computed crop ranking"
)
