package preferences

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/metrics"
)

// Session holds the preferences of one profile in memory.
// Every setter updates memory first and then writes its single key straight through.
// Store failures are logged and counted, never returned; memory stays authoritative.
// Writes are serialised by writeMu so the store sees them in the order memory did;
// readers only take mu and never wait on the store.
type Session struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	store   Store
	profile string
	prefs   domain.Preferences
}

// OpenSession loads profile from store
func OpenSession(ctx context.Context, store Store, profile string, cat Catalog) *Session {
	return &Session{
		store:   store,
		profile: profile,
		prefs:   *Load(ctx, store, profile, cat),
	}
}

// Profile is the profile this session belongs to
func (s *Session) Profile() string {
	return s.profile
}

// Snapshot returns a copy of the current preferences
func (s *Session) Snapshot() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Clone()
}

// SetAvailableEffort stores the effort budget. Negative values clamp to 0.
func (s *Session) SetAvailableEffort(ctx context.Context, effort float64) {
	effort = clamp(effort)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.prefs.AvailableEffort = effort
	s.mu.Unlock()

	s.persist(ctx, KeyTotalEffort, formatNumber(effort))
}

// SetCharacterLevel stores the character level. Negative values clamp to 0.
func (s *Session) SetCharacterLevel(ctx context.Context, level int) {
	if level < 0 {
		level = 0
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.prefs.CharacterLevel = level
	s.mu.Unlock()

	s.persist(ctx, KeyFarmLevel, strconv.Itoa(level))
}

// SetLandSize stores the land size. An unknown size is rejected before anything changes.
func (s *Session) SetLandSize(ctx context.Context, size domain.LandSize) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLandSize, size)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.prefs.LandSize = size
	s.mu.Unlock()

	s.persist(ctx, KeyLandSize, size.String())
	return nil
}

// SetPrice stores the price of a crop. Negative values clamp to 0.
func (s *Session) SetPrice(ctx context.Context, cropName string, price float64) {
	price = clamp(price)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.prefs.Prices == nil {
		s.prefs.Prices = make(map[string]float64)
	}
	s.prefs.Prices[cropName] = price
	s.mu.Unlock()

	s.persist(ctx, PriceKey(cropName), formatNumber(price))
}

func (s *Session) persist(ctx context.Context, key, value string) {
	if err := s.store.Set(ctx, s.profile, key, value); err != nil {
		metrics.PreferenceStoreErrors.WithLabelValues(metrics.OperationSet).Inc()
		logger.FromContext(ctx).Warn(LogMsgWriteFailed,
			"profile", s.profile,
			"key", key,
			"error", err)
	}
}
