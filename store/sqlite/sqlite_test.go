package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotStorage_ReadBeforeFirstWrite(t *testing.T) {
	// GIVEN: A fresh database
	// WHEN: Reading a snapshot that was never written
	// THEN: ok=false, no error (empty collection)

	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Snapshot("empleados").Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotStorage_WriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := store.Snapshot("empleados")
	require.NoError(t, snap.Write(ctx, []byte(`[{"cedula":"1"}]`)))

	data, ok, err := snap.Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"cedula":"1"}]`, string(data))
}

func TestSnapshotStorage_WriteReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := store.Snapshot("empleados")
	require.NoError(t, snap.Write(ctx, []byte(`["old"]`)))
	require.NoError(t, snap.Write(ctx, []byte(`["new"]`)))

	data, ok, err := snap.Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["new"]`, string(data))
}

func TestSnapshotStorage_BacksEmployeeRepository(t *testing.T) {
	// GIVEN: An employee repository over the SQLite backend
	// WHEN: Running the usual CRUD sequence
	// THEN: Behavior matches the file backend exactly

	store := newTestStore(t)
	ctx := context.Background()
	repo := payroll.NewEmployeeRepository(store.Snapshot("empleados"))

	ana, err := payroll.NewEmployee("0901", "Ana", decimal.NewFromFloat(800), "Ventas", "Vendedora")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, ana))

	got, ok, err := repo.Get(ctx, "0901")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)

	removed, err := repo.Delete(ctx, "0901")
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSnapshotStorage_CollectionsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Snapshot("a").Write(ctx, []byte(`["a"]`)))
	require.NoError(t, store.Snapshot("b").Write(ctx, []byte(`["b"]`)))

	dataA, ok, err := store.Snapshot("a").Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["a"]`, string(dataA))

	dataB, ok, err := store.Snapshot("b").Read(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["b"]`, string(dataB))
}
