/*
repository.go - Generic snapshot repository

PURPOSE:
  Provides CRUD semantics over a whole-collection snapshot for any
  entity type with a unique string key. The snapshot mechanics live
  here once; entity-specific knowledge is injected as a Codec.

STORAGE MODEL:
  Every mutating operation is a full read, full in-memory modify,
  full write of the snapshot. There is no partial update and no
  index. A missing snapshot behaves as an empty collection.

KEY COMPARISON:
  All operations decode the snapshot into typed entities first and
  compare Codec.Key values. Raw records are never scanned.

RESULT CONVENTIONS:
  - Create: error (DuplicateKeyError) on key collision, no side effect
  - Get:    (entity, ok) - absence is not an error
  - Update: bool - whether a matching record was replaced
  - Delete: bool - whether a matching record was removed

CONCURRENCY:
  Operations are not atomic across processes and not safe under
  concurrent callers. The discipline is one process, one caller,
  sequential calls; nothing here detects interleaving.

SEE ALSO:
  - storage.go: Backend interface and file implementation
  - errors.go:  Error types raised here
*/
package generic

import (
	"context"
	"encoding/json"
	"fmt"
)

// =============================================================================
// CODEC - Entity-specific serialization, injected per repository
// =============================================================================

// Codec converts between an entity and its stored record, and exposes
// the entity's unique business key. Both directions must be pure.
type Codec[E any] interface {
	// Serialize encodes an entity as one snapshot record.
	Serialize(e E) (json.RawMessage, error)

	// Deserialize decodes one snapshot record back into an entity.
	Deserialize(rec json.RawMessage) (E, error)

	// Key returns the entity's unique business key.
	Key(e E) string
}

// =============================================================================
// REPOSITORY
// =============================================================================

// Repository provides CRUD over a snapshot of entities of type E.
type Repository[E any] struct {
	storage Storage
	codec   Codec[E]
}

// NewRepository composes the snapshot mechanics with an entity codec.
func NewRepository[E any](storage Storage, codec Codec[E]) *Repository[E] {
	return &Repository[E]{storage: storage, codec: codec}
}

// Create appends the entity and rewrites the snapshot. Fails with
// DuplicateKeyError if an entity with the same key already exists;
// nothing is written in that case.
func (r *Repository[E]) Create(ctx context.Context, e E) error {
	entities, err := r.load(ctx)
	if err != nil {
		return err
	}

	key := r.codec.Key(e)
	for _, existing := range entities {
		if r.codec.Key(existing) == key {
			return &DuplicateKeyError{Key: key}
		}
	}

	return r.save(ctx, append(entities, e))
}

// Get scans for the first entity with a matching key.
// ok is false when no entity matches; this is not an error.
func (r *Repository[E]) Get(ctx context.Context, key string) (E, bool, error) {
	var zero E

	entities, err := r.load(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, e := range entities {
		if r.codec.Key(e) == key {
			return e, true, nil
		}
	}
	return zero, false, nil
}

// ListAll returns every entity in on-disk order. Re-invoking re-reads
// from storage.
func (r *Repository[E]) ListAll(ctx context.Context) ([]E, error) {
	return r.load(ctx)
}

// Update replaces the record with a matching key in place and rewrites
// the snapshot. Returns whether a match was found; resubmitting an
// unchanged entity succeeds.
func (r *Repository[E]) Update(ctx context.Context, key string, e E) (bool, error) {
	entities, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for i, existing := range entities {
		if r.codec.Key(existing) == key {
			entities[i] = e
			if err := r.save(ctx, entities); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete rewrites the snapshot excluding any record with a matching
// key. Returns whether anything was removed; the snapshot is not
// rewritten when nothing matched.
func (r *Repository[E]) Delete(ctx context.Context, key string) (bool, error) {
	entities, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	kept := entities[:0:0]
	for _, e := range entities {
		if r.codec.Key(e) != key {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entities) {
		return false, nil
	}

	if err := r.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// =============================================================================
// SNAPSHOT I/O
// =============================================================================

func (r *Repository[E]) load(ctx context.Context) ([]E, error) {
	data, ok, err := r.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	entities := make([]E, 0, len(records))
	for i, rec := range records {
		e, err := r.codec.Deserialize(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptSnapshot, i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *Repository[E]) save(ctx context.Context, entities []E) error {
	records := make([]json.RawMessage, 0, len(entities))
	for _, e := range entities {
		rec, err := r.codec.Serialize(e)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	// Indented for readability; the indentation is not significant.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return r.storage.Write(ctx, data)
}
