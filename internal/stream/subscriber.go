package stream

import (
	"context"
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/logger"
)

// RankingSource computes the current ranking of a profile
type RankingSource interface {
	Ranking(ctx context.Context, profile string) ([]domain.RankedCrop, error)
}

// Subscriber pushes a fresh ranking to a profile's clients whenever its preferences change
type Subscriber struct {
	hub    *Hub
	source RankingSource
}

// NewSubscriber creates a new Subscriber
func NewSubscriber(hub *Hub, source RankingSource) *Subscriber {
	return &Subscriber{hub: hub, source: source}
}

// Subscribe registers the subscriber on the bus
func (s *Subscriber) Subscribe(bus event.Bus) {
	bus.Subscribe(event.PreferencesUpdated, s.handlePreferencesUpdated)
	slog.Info(LogMsgSubscriberReady, "type", event.PreferencesUpdated)
}

func (s *Subscriber) handlePreferencesUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.PreferencesUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	// nobody is listening, skip the work
	if !s.hub.HasProfile(payload.Profile) {
		return nil
	}

	ranked, err := s.source.Ranking(ctx, payload.Profile)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRankingFailed, "profile", payload.Profile, "error", err)
		return err
	}
	s.hub.SendToProfile(payload.Profile, MessageTypeRanking, ranked)
	return nil
}
