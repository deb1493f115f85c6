package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/FarmCalc_Go/internal/database"
	"github.com/osse101/FarmCalc_Go/internal/domain"
)

// PreferenceStore implements preferences.Store on a single SQLite file
type PreferenceStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it
func Open(ctx context.Context, path string) (*PreferenceStore, error) {
	if path == "" {
		return nil, errors.New(ErrMsgEmptyPath)
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateDirFailed, err)
		}
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed, path, err)
	}
	// one writer; also keeps a :memory: database alive across calls
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := database.Migrate(ctx, db, goose.DialectSQLite3, database.MigrationsSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PreferenceStore{db: db}, nil
}

func initPragmas(ctx context.Context, db *sql.DB) error {
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf(ErrMsgPragmaFailed, p, err)
		}
	}
	return nil
}

// Get returns the value stored under key for profile
func (s *PreferenceStore) Get(ctx context.Context, profile, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE profile = ? AND key = ?`,
		profile, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return value, true, nil
}

// Set writes key for profile, replacing any previous value
func (s *PreferenceStore) Set(ctx context.Context, profile, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (profile, key, value, updated_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (profile, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping checks the database is usable
func (s *PreferenceStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *PreferenceStore) Close() error {
	return s.db.Close()
}
