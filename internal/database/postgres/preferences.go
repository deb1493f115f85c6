package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/FarmCalc_Go/internal/database"
	"github.com/osse101/FarmCalc_Go/internal/domain"
)

// PreferenceStore implements preferences.Store on PostgreSQL
type PreferenceStore struct {
	db *pgxpool.Pool
}

// NewPreferenceStore creates a store on an existing pool. The pool is closed by Close.
func NewPreferenceStore(db *pgxpool.Pool) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Migrate brings the preferences schema up to date
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return database.Migrate(ctx, db, goose.DialectPostgres, database.MigrationsPostgres)
}

// Get returns the value stored under key for profile
func (s *PreferenceStore) Get(ctx context.Context, profile, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM preferences
		WHERE profile = $1 AND key = $2
	`
	var value string
	err := s.db.QueryRow(ctx, query, profile, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, ErrMsgGetPreferenceFailed, err)
	}
	return value, true, nil
}

// Set writes key for profile, replacing any previous value
func (s *PreferenceStore) Set(ctx context.Context, profile, key, value string) error {
	query := `
		INSERT INTO preferences (profile, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (profile, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.Exec(ctx, query, profile, key, value); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, ErrMsgSetPreferenceFailed, err)
	}
	return nil
}

// Ping checks the database connection
func (s *PreferenceStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *PreferenceStore) Close() error {
	s.db.Close()
	return nil
}
