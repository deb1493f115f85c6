package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and the resilient publisher
// that wraps it. The dead-letter directory is created when a dead-letter path is set.
// Services publish through the returned publisher; subscribers register on either.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if cfg.DeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
		}
	} else {
		slog.Warn(LogMsgDeadLetterDisabled)
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventMaxRetries,
		RetryDelay:     EventRetryDelay,
		DeadLetterPath: cfg.DeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventMaxRetries,
		"retry_delay", EventRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return eventBus, resilientPublisher, nil
}
