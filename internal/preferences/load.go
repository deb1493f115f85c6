package preferences

import (
	"context"
	"log/slog"
	"math"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/metrics"
)

// Load reads every preference of profile. Each key is read on its own: a key that is
// missing, unreadable or unparsable takes its default and the rest still load.
func Load(ctx context.Context, store Store, profile string, cat Catalog) *domain.Preferences {
	log := logger.FromContext(ctx).With("profile", profile)
	r := reader{ctx: ctx, store: store, profile: profile, log: log}

	prefs := &domain.Preferences{
		AvailableEffort: domain.DefaultAvailableEffort,
		CharacterLevel:  domain.DefaultCharacterLevel,
		LandSize:        domain.DefaultLandSize,
		Prices:          make(map[string]float64),
	}

	if raw, ok := r.get(KeyTotalEffort); ok {
		if v, ok := parseStored(raw); ok {
			prefs.AvailableEffort = v
		} else {
			log.Warn(LogMsgParseFailed, "key", KeyTotalEffort, "value", raw)
		}
	}

	if raw, ok := r.get(KeyLandSize); ok {
		if ls, err := domain.ParseLandSize(raw); err == nil {
			prefs.LandSize = ls
		} else {
			log.Warn(LogMsgParseFailed, "key", KeyLandSize, "value", raw)
		}
	}

	levelKey := KeyFarmLevel
	raw, ok := r.get(KeyFarmLevel)
	if !ok {
		levelKey = LegacyKeyFarmLevel
		raw, ok = r.get(LegacyKeyFarmLevel)
		if ok {
			log.Debug(LogMsgLegacyLevelUsed)
		}
	}
	if ok {
		if v, ok := parseStored(raw); ok && v <= math.MaxInt32 {
			prefs.CharacterLevel = int(v)
		} else {
			log.Warn(LogMsgParseFailed, "key", levelKey, "value", raw)
		}
	}

	for _, name := range cat.Names() {
		prefs.Prices[name] = domain.DefaultPrice
		key := PriceKey(name)
		raw, ok := r.get(key)
		if !ok {
			continue
		}
		if v, ok := parseStored(raw); ok {
			prefs.Prices[name] = v
		} else {
			log.Warn(LogMsgParseFailed, "key", key, "value", raw)
		}
	}

	return prefs
}

type reader struct {
	ctx     context.Context
	store   Store
	profile string
	log     *slog.Logger
}

// get treats a failed read as a missing key
func (r reader) get(key string) (string, bool) {
	v, ok, err := r.store.Get(r.ctx, r.profile, key)
	if err != nil {
		metrics.PreferenceStoreErrors.WithLabelValues(metrics.OperationGet).Inc()
		r.log.Warn(LogMsgReadFailed, "key", key, "error", err)
		return "", false
	}
	return v, ok
}
