/*
repository_test.go - Behavior tests for the generic snapshot repository

ORGANIZATION:
  1. Empty collection semantics - missing snapshot is not an error
  2. Create - append, duplicate rejection without side effect
  3. Update/Delete - boolean results, surgical replacement, order
  4. Snapshot integrity - round-trip, corrupt input

The tests run against the file backend; the entity type is a local
stand-in so the repository stays domain-agnostic here.
*/
package generic_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

type account struct {
	Number string `json:"number"`
	Owner  string `json:"owner"`
}

type accountCodec struct{}

func (accountCodec) Serialize(a account) (json.RawMessage, error) {
	return json.Marshal(a)
}

func (accountCodec) Deserialize(rec json.RawMessage) (account, error) {
	var a account
	err := json.Unmarshal(rec, &a)
	return a, err
}

func (accountCodec) Key(a account) string { return a.Number }

func newTestRepo(t *testing.T) (*generic.Repository[account], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo := generic.NewRepository[account](generic.NewFileStorage(path), accountCodec{})
	return repo, path
}

// =============================================================================
// EMPTY COLLECTION SEMANTICS
// =============================================================================

func TestRepository_MissingSnapshot_IsEmptyCollection(t *testing.T) {
	// GIVEN: No snapshot file has ever been written
	// WHEN: Listing and getting
	// THEN: Empty results, never an error

	repo, path := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, ok, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reads must not create the snapshot")
}

// =============================================================================
// CREATE
// =============================================================================

func TestRepository_CreateThenGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))

	got, ok, err := repo.Get(ctx, "a-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, account{Number: "a-1", Owner: "Ada"}, got)
}

func TestRepository_Create_DuplicateKey_Rejected(t *testing.T) {
	// GIVEN: An account with key a-1 already stored
	// WHEN: Creating another entity with the same key
	// THEN: DuplicateKeyError, and storage still holds exactly one record

	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))

	err := repo.Create(ctx, account{Number: "a-1", Owner: "Bob"})
	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrDuplicateKey)

	var dupErr *generic.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "a-1", dupErr.Key)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].Owner, "losing create must not overwrite")
}

func TestRepository_ListAll_PreservesInsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, n := range []string{"a-3", "a-1", "a-2"} {
		require.NoError(t, repo.Create(ctx, account{Number: n, Owner: n}))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a-3", all[0].Number)
	assert.Equal(t, "a-1", all[1].Number)
	assert.Equal(t, "a-2", all[2].Number)
}

// =============================================================================
// UPDATE / DELETE
// =============================================================================

func TestRepository_Update_AbsentKey_ReturnsFalse(t *testing.T) {
	// GIVEN: One stored account
	// WHEN: Updating a key that does not exist
	// THEN: false, no error, storage unchanged

	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))

	found, err := repo.Update(ctx, "a-9", account{Number: "a-9", Owner: "Eve"})
	require.NoError(t, err)
	assert.False(t, found)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].Owner)
}

func TestRepository_Update_ReplacesExactlyOneRecord(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))
	require.NoError(t, repo.Create(ctx, account{Number: "a-2", Owner: "Bob"}))
	require.NoError(t, repo.Create(ctx, account{Number: "a-3", Owner: "Cyd"}))

	found, err := repo.Update(ctx, "a-2", account{Number: "a-2", Owner: "Bea"})
	require.NoError(t, err)
	assert.True(t, found)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ada", all[0].Owner)
	assert.Equal(t, "Bea", all[1].Owner, "matched record replaced in place")
	assert.Equal(t, "Cyd", all[2].Owner)
}

func TestRepository_Update_UnchangedValue_Succeeds(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := account{Number: "a-1", Owner: "Ada"}
	require.NoError(t, repo.Create(ctx, a))

	found, err := repo.Update(ctx, "a-1", a)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))
	require.NoError(t, repo.Create(ctx, account{Number: "a-2", Owner: "Bob"}))
	require.NoError(t, repo.Create(ctx, account{Number: "a-3", Owner: "Cyd"}))

	// Absent key
	removed, err := repo.Delete(ctx, "a-9")
	require.NoError(t, err)
	assert.False(t, removed)

	// Present key removes exactly one, rest keep their order
	removed, err = repo.Delete(ctx, "a-2")
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a-1", all[0].Number)
	assert.Equal(t, "a-3", all[1].Number)
}

// =============================================================================
// SNAPSHOT INTEGRITY
// =============================================================================

func TestRepository_SnapshotFile_IsIndentedArray(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, account{Number: "a-1", Owner: "Ada"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "a-1", records[0]["number"])
	assert.Contains(t, string(data), "\n  ", "snapshot is written indented")
}

func TestRepository_CorruptSnapshot_SurfacesError(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.ListAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrCorruptSnapshot)
}
