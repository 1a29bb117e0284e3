package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registro.csv")
	return NewStore(path), path
}

func TestStore_LoadMissingFileIsEmptyLedger(t *testing.T) {
	store, _ := newTestStore(t)

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	want := []ledger.Record{
		{EmployeeID: "emp-1", Date: "2024-01-15", ClockIn: "09:00:00", ClockOut: "17:00:00", WorkedHours: "8:00:00"},
		{EmployeeID: "emp-2", Date: "2024-01-15", ClockIn: "10:00:00"},
		{EmployeeID: "emp-1", Date: "2024-01-16", ClockIn: "08:45:00", ClockOut: ledger.NoCheckout},
	}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_LoadCorruptedFile(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("employee_id,date\nx,y\n"), 0644))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrMalformedLedger)
}

func TestStore_UpdateSkipsWriteWhenUnchanged(t *testing.T) {
	store, path := newTestStore(t)

	err := store.Update(context.Background(), func(records []ledger.Record) ([]ledger.Record, bool, error) {
		return records, false, nil
	})
	require.NoError(t, err)

	// No change means no file is ever created.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_UpdatePersistsChanges(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Update(ctx, func(records []ledger.Record) ([]ledger.Record, bool, error) {
		records = append(records, ledger.Record{EmployeeID: "emp-1", Date: "2024-01-15", ClockIn: "09:00:00"})
		return records, true, nil
	})
	require.NoError(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Open())
}

func TestStore_UpdatePropagatesFnError(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seed := []ledger.Record{{EmployeeID: "emp-1", Date: "2024-01-15", ClockIn: "09:00:00"}}
	require.NoError(t, store.Save(ctx, seed))

	wantErr := assert.AnError
	err := store.Update(ctx, func(records []ledger.Record) ([]ledger.Record, bool, error) {
		return nil, true, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// The aborted update must not have written anything.
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestStore_SaveFailureIsSurfaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "registro.csv")
	store := NewStore(path)

	err := store.Save(context.Background(), []ledger.Record{
		{EmployeeID: "emp-1", Date: "2024-01-15", ClockIn: "09:00:00"},
	})
	assert.Error(t, err)
}

func TestStore_SaveDoesNotLeaveTempFiles(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
