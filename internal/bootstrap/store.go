package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/database"
	"github.com/osse101/FarmCalc_Go/internal/database/postgres"
	"github.com/osse101/FarmCalc_Go/internal/database/sqlite"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

// OpenStore opens the preference store selected by STORE_DRIVER and brings its schema
// up to date. The caller owns the store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (preferences.Store, error) {
	var (
		store preferences.Store
		err   error
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = preferences.NewMemoryStore()
	case config.StoreDriverPostgres:
		store, err = openPostgres(ctx, cfg)
	case config.StoreDriverSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			err = fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
	default:
		err = fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*postgres.PreferenceStore, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}
	return postgres.NewPreferenceStore(pool), nil
}
