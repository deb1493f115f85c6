package preferences

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/metrics"
)

// SeedMode selects how default prices are written for a profile
type SeedMode string

const (
	// SeedMissing writes a default only for price keys that are absent
	SeedMissing SeedMode = "missing"
	// SeedAll rewrites every default price as soon as one price key is absent
	SeedAll SeedMode = "all"
)

// ParseSeedMode accepts "missing" or "all", case-insensitive. Empty means SeedMissing.
func ParseSeedMode(s string) (SeedMode, error) {
	switch SeedMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeedMissing:
		return SeedMissing, nil
	case SeedAll:
		return SeedAll, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownSeedMode, s)
	}
}

// Catalog is the part of the crop catalog seeding and loading need
type Catalog interface {
	Names() []string
	DefaultPrice(name string) float64
}

// Seed writes catalog default prices for profile. Running it again changes nothing.
func Seed(ctx context.Context, store Store, profile string, cat Catalog, mode SeedMode) error {
	names := cat.Names()

	var missing []string
	for _, name := range names {
		_, ok, err := store.Get(ctx, profile, PriceKey(name))
		if err != nil {
			metrics.PreferenceStoreErrors.WithLabelValues(metrics.OperationSeed).Inc()
			return fmt.Errorf(ErrMsgSeedReadFailed, name, err)
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	targets := missing
	if mode == SeedAll {
		targets = names
	}

	for _, name := range targets {
		if err := store.Set(ctx, profile, PriceKey(name), formatNumber(cat.DefaultPrice(name))); err != nil {
			metrics.PreferenceStoreErrors.WithLabelValues(metrics.OperationSeed).Inc()
			return fmt.Errorf(ErrMsgSeedWriteFailed, name, err)
		}
	}

	logger.FromContext(ctx).Info(LogMsgSeeded, "profile", profile, "mode", mode, "written", len(targets))
	return nil
}
