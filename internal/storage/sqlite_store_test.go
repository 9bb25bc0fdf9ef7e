package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "duogoals.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_GetPut(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t)

	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	for _, v := range []string{"one", "two", "three"} {
		if err := store.Put(ctx, "k", v); err != nil {
			t.Fatalf("Put(%s) failed: %v", v, err)
		}
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "three" {
		t.Errorf("Expected three, got %q", got)
	}

	var rows int
	if err := store.GetDB().QueryRow("SELECT count(*) FROM kv").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("Expected a single row, got %d", rows)
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "duogoals.db")

	first := NewSQLiteStore(path)
	if err := first.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := first.Put(ctx, "k", "persisted"); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "k")
	if err != nil || got != "persisted" {
		t.Errorf("Expected persisted value, got %q, %v", got, err)
	}

	if err := NewSQLiteStore(path).Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestSQLiteStore_SchemaVersion(t *testing.T) {
	store := setupSQLite(t)

	var version int
	if err := store.GetDB().QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected schema version 1, got %d", version)
	}
}

func TestMigrationRunner(t *testing.T) {
	store := setupSQLite(t)

	runner, ok, err := MigrationRunner(store)
	if err != nil || !ok {
		t.Fatalf("MigrationRunner(sqlite) = ok %v, err %v", ok, err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion failed on a fresh database: %v", err)
	}

	if _, ok, err := MigrationRunner(NewFileStore(filepath.Join(t.TempDir(), "data.json"))); ok || err != nil {
		t.Errorf("MigrationRunner(file) = ok %v, err %v; want no schema", ok, err)
	}

	if _, ok, err := MigrationRunner(NewSQLiteStore(filepath.Join(t.TempDir(), "closed.db"))); !ok || err == nil {
		t.Errorf("MigrationRunner(unloaded sqlite) = ok %v, err %v; want an error", ok, err)
	}
}
