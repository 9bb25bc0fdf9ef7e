package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/migration"
	"github.com/julianstephens/duogoals/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, s.path)
	}

	return s.open()
}

// Load opens the database, creating it and applying pending migrations as needed.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := runMigrations(db, migration.DriverSQLite); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics and tests.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// MigrationRunner returns a runner over the schema of a loaded SQL backend.
// ok is false for backends without a schema.
func MigrationRunner(p Provider) (runner *migration.Runner, ok bool, err error) {
	var db *sql.DB
	var driver migration.Driver
	switch s := p.(type) {
	case *SQLiteStore:
		db, driver = s.GetDB(), migration.DriverSQLite
	case *PostgresStore:
		db, driver = s.GetDB(), migration.DriverPostgres
	default:
		return nil, false, nil
	}
	if db == nil {
		return nil, true, fmt.Errorf("storage not loaded")
	}
	runner, err = newRunner(db, driver)
	return runner, true, err
}

func newRunner(db *sql.DB, driver migration.Driver) (*migration.Runner, error) {
	fsys := migrations.SQLite()
	if driver == migration.DriverPostgres {
		fsys = migrations.Postgres()
	}
	return migration.NewRunner(db, fsys, driver)
}

func runMigrations(db *sql.DB, driver migration.Driver) error {
	runner, err := newRunner(db, driver)
	if err != nil {
		return err
	}

	_, err = runner.ApplyMigrations(func(msg string) {
		logger.Debug(msg, "driver", driver)
	})
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
