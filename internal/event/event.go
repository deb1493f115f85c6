package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	PreferencesUpdated Type = "preferences.updated"
	PriceUpdated       Type = "price.updated"
)

// PreferencesUpdatedPayloadV1 is published whenever any input of a profile changes.
// Fields lists the storage keys that were written.
type PreferencesUpdatedPayloadV1 struct {
	Profile   string   `json:"profile"`
	Fields    []string `json:"fields"`
	Timestamp int64    `json:"timestamp"`
}

// PriceUpdatedPayloadV1 is published when a crop price changes
type PriceUpdatedPayloadV1 struct {
	Profile   string  `json:"profile"`
	Crop      string  `json:"crop"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

// NewPreferencesUpdatedEvent creates a preferences updated event
func NewPreferencesUpdatedEvent(profile string, fields []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PreferencesUpdated,
		Payload: PreferencesUpdatedPayloadV1{
			Profile:   profile,
			Fields:    fields,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{MetadataKeyProfile: profile},
	}
}

// NewPriceUpdatedEvent creates a price updated event
func NewPriceUpdatedEvent(profile, crop string, price float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PriceUpdated,
		Payload: PriceUpdatedPayloadV1{
			Profile:   profile,
			Crop:      crop,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{MetadataKeyProfile: profile},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
