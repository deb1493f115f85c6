package bootstrap

import "time"

// DirPermission is used for directories the service creates on start
const DirPermission = 0755

// Event system defaults
const (
	// EventMaxRetries is the number of retry attempts for a failed event delivery
	EventMaxRetries = 5

	// EventRetryDelay is the base delay between retry attempts (exponential backoff)
	EventRetryDelay = 2 * time.Second
)

// Log messages for startup
const (
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgEventHandlersRegistered = "Event handlers registered"
	LogMsgStoreOpened             = "Preference store opened"
	LogMsgCatalogLoaded           = "Crop catalog loaded"
	LogMsgLoggingInitialized      = "Logging initialized"
	LogMsgDeadLetterDisabled      = "Dead-letter file disabled, failed events are dropped after retries"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgShuttingDownStream         = "Closing live ranking connections..."
	LogMsgShuttingDownEventPublisher = "Flushing pending events..."
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgClosingStore               = "Closing preference store..."
	LogMsgStoreCloseFailed           = "Preference store close failed"
	LogMsgServerStopped              = "Server stopped"
)

// Error messages
const (
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgFailedConnectDatabase     = "failed to connect to database"
	ErrMsgFailedMigrateDatabase     = "failed to migrate database"
	ErrMsgFailedOpenSQLite          = "failed to open sqlite store"
	ErrMsgUnknownStoreDriver        = "unknown store driver"
	ErrMsgFailedLoadCatalog         = "failed to load crop catalog"
)
