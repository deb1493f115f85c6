package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/FarmCalc_Go/internal/database"
	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

var _ preferences.Store = (*PreferenceStore)(nil)

type fixedCatalog map[string]float64

func (c fixedCatalog) Names() []string                  { return []string{"Wheat", "Apple Tree"} }
func (c fixedCatalog) DefaultPrice(name string) float64 { return c[name] }

func setupStore(t *testing.T) *PreferenceStore {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
	}
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 8, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, pool))

	store := NewPreferenceStore(pool)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPreferenceStore_Integration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nobody", preferences.KeyLandSize)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("upsert", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "alice", preferences.KeyTotalEffort, "100"))
		require.NoError(t, store.Set(ctx, "alice", preferences.KeyTotalEffort, "250.5"))

		v, ok, err := store.Get(ctx, "alice", preferences.KeyTotalEffort)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "250.5", v)
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "bob", preferences.KeyLandSize, "small"))
		_, ok, err := store.Get(ctx, "alice", preferences.KeyLandSize)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("seed and session round trip", func(t *testing.T) {
		cat := fixedCatalog{"Wheat": 9, "Apple Tree": 40}
		require.NoError(t, preferences.Seed(ctx, store, "carol", cat, preferences.SeedMissing))
		require.NoError(t, preferences.Seed(ctx, store, "carol", cat, preferences.SeedMissing))

		s := preferences.OpenSession(ctx, store, "carol", cat)
		s.SetPrice(ctx, "Apple Tree", 55)
		require.NoError(t, s.SetLandSize(ctx, domain.LandSizeLarge))

		got := preferences.Load(ctx, store, "carol", cat)
		assert.Equal(t, 9.0, got.Prices["Wheat"])
		assert.Equal(t, 55.0, got.Prices["Apple Tree"])
		assert.Equal(t, domain.LandSizeLarge, got.LandSize)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Set(ctx, "dave", preferences.KeyFarmLevel, "7"))
			}()
		}
		wg.Wait()

		v, ok, err := store.Get(ctx, "dave", preferences.KeyFarmLevel)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "7", v)
	})

	assert.NoError(t, store.Ping(ctx))
}
