/*
Package sqlite provides a SQLite-backed implementation of generic.Storage.

PURPOSE:
  Keeps every collection snapshot as a single blob row, so one database
  file can hold several collections while preserving the whole-snapshot
  storage model: the unit of durability is still the entire collection,
  read whole and replaced whole. No per-entity rows, no indexes beyond
  the collection name.

KEY TABLE:
  snapshots(name TEXT PRIMARY KEY, data BLOB, updated_at TIMESTAMP)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety within one process. Nothing
  guards against concurrent processes; the discipline is the same as
  for the file backend.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better crash
  recovery of the database file itself.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  repo := payroll.NewEmployeeRepository(store.Snapshot("empleados"))

SEE ALSO:
  - generic/storage.go: Interface definition and file backend
  - generic/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the database connection. Individual collections are
// addressed through Snapshot.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// =============================================================================
// SNAPSHOT STORAGE - One named collection, implements generic.Storage
// =============================================================================

// SnapshotStorage binds a Store to one named collection.
type SnapshotStorage struct {
	store *Store
	name  string
}

// Snapshot returns the storage for the named collection.
func (s *Store) Snapshot(name string) *SnapshotStorage {
	return &SnapshotStorage{store: s, name: name}
}

func (c *SnapshotStorage) Read(ctx context.Context) ([]byte, bool, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	var data []byte
	err := c.store.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE name = ?`, c.name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *SnapshotStorage) Write(ctx context.Context, data []byte) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	_, err := c.store.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, c.name, data, time.Now().UTC())
	return err
}
