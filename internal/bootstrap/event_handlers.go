package bootstrap

import (
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/metrics"
	"github.com/osse101/FarmCalc_Go/internal/stream"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *stream.Hub // nil when live rankings are not served
	Rankings stream.RankingSource
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - Live ranking subscriber (pushes fresh rankings to websocket clients)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)

	if deps.Hub != nil {
		stream.NewSubscriber(deps.Hub, deps.Rankings).Subscribe(deps.EventBus)
	}

	slog.Info(LogMsgEventHandlersRegistered, "live_rankings", deps.Hub != nil)
}
