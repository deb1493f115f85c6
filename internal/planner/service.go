package planner

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FarmCalc_Go/internal/catalog"
	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/farm"
	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/metrics"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

// Service answers every question a profile can ask about its crops
type Service interface {
	Preferences(ctx context.Context, profile string) (domain.Preferences, error)
	UpdatePreferences(ctx context.Context, profile string, update domain.PreferencesUpdate) (domain.Preferences, error)
	SetPrice(ctx context.Context, profile, cropName string, price float64) (string, error)
	Ranking(ctx context.Context, profile string) ([]domain.RankedCrop, error)
	Detail(ctx context.Context, profile, cropName string) (*domain.CropDetail, error)
	Catalog() []domain.Crop
	Ping(ctx context.Context) error
}

// Options tune the service
type Options struct {
	SeedMode         preferences.SeedMode
	SessionCacheSize int
	SessionTTL       time.Duration
}

type service struct {
	catalog *catalog.Catalog
	store   preferences.Store
	bus     event.Bus
	mode    preferences.SeedMode

	// openMu serialises session creation so a profile never gets two sessions
	openMu   sync.Mutex
	sessions *expirable.LRU[string, *preferences.Session]
}

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateProfile checks a profile identifier
func ValidateProfile(profile string) error {
	if len(profile) == 0 || len(profile) > MaxProfileLength || !profilePattern.MatchString(profile) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProfile, profile)
	}
	return nil
}

// NewService creates a planner over a catalog and a preference store. bus may be nil.
func NewService(cat *catalog.Catalog, store preferences.Store, bus event.Bus, opts Options) Service {
	if opts.SessionCacheSize <= 0 {
		opts.SessionCacheSize = DefaultSessionCacheSize
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.SeedMode == "" {
		opts.SeedMode = preferences.SeedMissing
	}
	return &service{
		catalog:  cat,
		store:    store,
		bus:      bus,
		mode:     opts.SeedMode,
		sessions: expirable.NewLRU[string, *preferences.Session](opts.SessionCacheSize, nil, opts.SessionTTL),
	}
}

// session returns the cached session of profile, seeding and loading it on first use
func (s *service) session(ctx context.Context, profile string) (*preferences.Session, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	if sess, ok := s.sessions.Get(profile); ok {
		return sess, nil
	}

	s.openMu.Lock()
	defer s.openMu.Unlock()
	if sess, ok := s.sessions.Get(profile); ok {
		return sess, nil
	}

	log := logger.FromContext(ctx)
	if err := preferences.Seed(ctx, s.store, profile, s.catalog, s.mode); err != nil {
		log.Warn(LogMsgSeedFailed, "profile", profile, "error", err)
	}
	sess := preferences.OpenSession(ctx, s.store, profile, s.catalog)
	s.sessions.Add(profile, sess)
	log.Debug(LogMsgSessionOpened, "profile", profile)
	return sess, nil
}

func (s *service) Preferences(ctx context.Context, profile string) (domain.Preferences, error) {
	sess, err := s.session(ctx, profile)
	if err != nil {
		return domain.Preferences{}, err
	}
	return sess.Snapshot(), nil
}

func (s *service) UpdatePreferences(ctx context.Context, profile string, update domain.PreferencesUpdate) (domain.Preferences, error) {
	sess, err := s.session(ctx, profile)
	if err != nil {
		return domain.Preferences{}, err
	}

	// validate everything before the first write
	if update.AvailableEffort != nil && *update.AvailableEffort < 0 {
		return domain.Preferences{}, fmt.Errorf("%w: available effort", domain.ErrNegativeValue)
	}
	if update.CharacterLevel != nil && *update.CharacterLevel < 0 {
		return domain.Preferences{}, fmt.Errorf("%w: character level", domain.ErrNegativeValue)
	}
	if update.LandSize != nil && !update.LandSize.Valid() {
		return domain.Preferences{}, fmt.Errorf("%w: %q", domain.ErrInvalidLandSize, *update.LandSize)
	}

	var fields []string
	if update.AvailableEffort != nil {
		sess.SetAvailableEffort(ctx, *update.AvailableEffort)
		fields = append(fields, preferences.KeyTotalEffort)
	}
	if update.CharacterLevel != nil {
		sess.SetCharacterLevel(ctx, *update.CharacterLevel)
		fields = append(fields, preferences.KeyFarmLevel)
	}
	if update.LandSize != nil {
		if err := sess.SetLandSize(ctx, *update.LandSize); err != nil {
			return domain.Preferences{}, err
		}
		fields = append(fields, preferences.KeyLandSize)
	}

	if len(fields) > 0 {
		s.publish(ctx, event.NewPreferencesUpdatedEvent(profile, fields))
	}
	return sess.Snapshot(), nil
}

// SetPrice stores the price under the catalog name of the crop and returns that name
func (s *service) SetPrice(ctx context.Context, profile, cropName string, price float64) (string, error) {
	crop, err := s.catalog.Resolve(cropName)
	if err != nil {
		return "", err
	}
	if price < 0 {
		return "", fmt.Errorf("%w: price", domain.ErrNegativeValue)
	}
	sess, err := s.session(ctx, profile)
	if err != nil {
		return "", err
	}

	sess.SetPrice(ctx, crop.Name, price)
	s.publish(ctx, event.NewPriceUpdatedEvent(profile, crop.Name, price))
	s.publish(ctx, event.NewPreferencesUpdatedEvent(profile, []string{preferences.PriceKey(crop.Name)}))
	return crop.Name, nil
}

func (s *service) Ranking(ctx context.Context, profile string) ([]domain.RankedCrop, error) {
	prefs, err := s.Preferences(ctx, profile)
	if err != nil {
		return nil, err
	}
	ranked := farm.Rank(s.catalog.Crops(), prefs)
	metrics.RankingsComputed.Inc()
	logger.FromContext(ctx).Debug(LogMsgRankingComputed, "profile", profile, "crops", len(ranked))
	return ranked, nil
}

func (s *service) Detail(ctx context.Context, profile, cropName string) (*domain.CropDetail, error) {
	crop, err := s.catalog.Resolve(cropName)
	if err != nil {
		return nil, err
	}
	prefs, err := s.Preferences(ctx, profile)
	if err != nil {
		return nil, err
	}
	detail := farm.ComputeDetail(crop, prefs.LandSize, prefs.Price(crop.Name))
	metrics.DetailsComputed.WithLabelValues(crop.Name).Inc()
	return &detail, nil
}

func (s *service) Catalog() []domain.Crop {
	return s.catalog.Crops()
}

func (s *service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
