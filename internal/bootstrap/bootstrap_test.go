package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmCalc_Go/internal/config"
	"github.com/osse101/FarmCalc_Go/internal/event"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
	"github.com/osse101/FarmCalc_Go/internal/stream"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name: "memory",
			cfg:  &config.Config{StoreDriver: config.StoreDriverMemory},
		},
		{
			name: "sqlite file",
			cfg: &config.Config{
				StoreDriver: config.StoreDriverSQLite,
				SQLitePath:  filepath.Join(t.TempDir(), "nested", "farmcalc.db"),
			},
		},
		{
			name:    "sqlite without path",
			cfg:     &config.Config{StoreDriver: config.StoreDriverSQLite},
			wantErr: ErrMsgFailedOpenSQLite,
		},
		{
			name:    "unknown driver",
			cfg:     &config.Config{StoreDriver: "redis"},
			wantErr: ErrMsgUnknownStoreDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStore(ctx, tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Set(ctx, "p1", preferences.KeyLandSize, "large"))
			got, ok, err := store.Get(ctx, "p1", preferences.KeyLandSize)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "large", got)
			assert.NoError(t, store.Ping(ctx))
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		cat, err := LoadCatalog(&config.Config{})
		require.NoError(t, err)
		assert.Positive(t, cat.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(&config.Config{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "events")
	cfg := &config.Config{DeadLetterPath: filepath.Join(dir, "deadletter.jsonl")}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	assert.DirExists(t, dir)

	received := make(chan string, 1)
	publisher.Subscribe(event.PriceUpdated, func(_ context.Context, evt event.Event) error {
		received <- string(evt.Type)
		return nil
	})
	require.NoError(t, publisher.Publish(context.Background(), event.NewPriceUpdatedEvent("p1", "Wheat", 2)))
	assert.Equal(t, string(event.PriceUpdated), <-received)

	require.NoError(t, publisher.Shutdown(context.Background()))
}

type closeTracker struct {
	preferences.Store
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return c.Store.Close()
}

func TestGracefulShutdown(t *testing.T) {
	t.Run("skips nil components", func(t *testing.T) {
		assert.NotPanics(t, func() {
			GracefulShutdown(context.Background(), ShutdownComponents{})
		})
	})

	t.Run("stops hub and closes store", func(t *testing.T) {
		hub := stream.NewHub()
		hub.Start()
		store := &closeTracker{Store: preferences.NewMemoryStore()}
		_, publisher, err := InitializeEventSystem(&config.Config{})
		require.NoError(t, err)

		GracefulShutdown(context.Background(), ShutdownComponents{
			Hub:                hub,
			ResilientPublisher: publisher,
			Store:              store,
		})

		assert.True(t, store.closed)
		assert.Zero(t, hub.ClientCount())
	})
}
