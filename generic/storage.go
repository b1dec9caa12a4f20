/*
storage.go - Snapshot storage seam

PURPOSE:
  Defines the interface between the repository and durable bytes.
  The whole collection snapshot is the unit of durability: backends
  read it entire and replace it entire. Different implementations can
  use a flat file, SQLite, or in-memory storage.

SNAPSHOT CONTRACT:
  - Read():  returns the full snapshot, or ok=false if none was ever
             written (an empty collection, never an error)
  - Write(): replaces the snapshot wholesale

  There is no partial update, no append, no index. A crash between a
  caller's Read and Write can lose intervening state; callers accept
  the one-process, sequential-calls discipline.

IMPLEMENTATIONS:
  - FileStorage (this file):    UTF-8 file on local disk
  - store/sqlite:               Single blob row per collection
  - store/memory.go:            In-memory for testing

SEE ALSO:
  - repository.go: The only consumer of this interface
*/
package generic

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// =============================================================================
// STORAGE - Interface for whole-snapshot persistence
// =============================================================================

// Storage persists one collection snapshot as an opaque byte blob.
type Storage interface {
	// Read returns the current snapshot. ok is false when no snapshot
	// exists yet; this is an empty collection, not an error.
	Read(ctx context.Context) (data []byte, ok bool, err error)

	// Write replaces the snapshot wholesale.
	Write(ctx context.Context, data []byte) error
}

// =============================================================================
// FILE STORAGE - Default flat-file backend
// =============================================================================

// FileStorage stores the snapshot in a single file on local disk.
type FileStorage struct {
	Path string
}

// NewFileStorage creates a file-backed storage at the given path.
// The file is created on first Write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (s *FileStorage) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStorage) Write(ctx context.Context, data []byte) error {
	return os.WriteFile(s.Path, data, 0o644)
}
