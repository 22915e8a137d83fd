package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/hecreatescode/versekeeper/internal/storage/migrations"
)

// SQLiteStore persists key-value pairs in a single kv table.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations applies the embedded goose migrations that create the kv
// table. Entity shapes themselves are JSON and carry no migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (or creates) the database at dsn, applies migrations and
// returns a ready store. The caller must have imported a driver registered
// under the name "sqlite" (modernc.org/sqlite).
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-open, already-migrated handle. Used by
// tests that manage the schema themselves.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Read(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `select value from kv where key=?`, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Write replaces the value under key in one upsert statement; the
// statement's atomicity is the only write guarantee the layer offers.
func (s *SQLiteStore) Write(ctx context.Context, key string, value []byte) error {
	query := `insert into kv (key, value) values (?, ?)
			on conflict(key) do update set value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
