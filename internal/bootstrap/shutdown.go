package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
	"github.com/osse101/FarmCalc_Go/internal/server"
	"github.com/osse101/FarmCalc_Go/internal/stream"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Hub                *stream.Hub
	ResilientPublisher *event.ResilientPublisher
	Store              preferences.Store
}

// GracefulShutdown shuts the application down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Stream hub (close websocket clients)
// 3. Event publisher (finish retries, dead-letter what is left)
// 4. Preference store (last, pending writes may still need it)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Hub != nil {
		slog.Info(LogMsgShuttingDownStream)
		components.Hub.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
