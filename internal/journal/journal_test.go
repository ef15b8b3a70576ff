package journal

import (
	"context"
	"testing"
	"time"

	"github.com/averlane/bankist/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestRecordAndEvents(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	events := []session.Event{
		{Kind: session.EventLogin, Handle: "ad", At: at},
		{Kind: session.EventTransfer, Handle: "ad", Counterparty: "jd", Amount: decimal.RequireFromString("120.50"), At: at.Add(time.Minute)},
		{Kind: session.EventTimeout, Handle: "ad", At: at.Add(5 * time.Minute)},
	}
	for _, e := range events {
		require.NoError(t, store.Record(e))
	}

	entries, err := store.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Oldest first, ULIDs are lexicographically sortable.
	assert.Equal(t, session.EventLogin, entries[0].Kind)
	assert.Equal(t, session.EventTransfer, entries[1].Kind)
	assert.Equal(t, session.EventTimeout, entries[2].Kind)

	transfer := entries[1]
	assert.NotEmpty(t, transfer.ID)
	assert.Equal(t, "ad", transfer.Handle)
	assert.Equal(t, "jd", transfer.Counterparty)
	assert.True(t, transfer.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, transfer.At.Equal(at.Add(time.Minute)))
}

func TestEventsEmptyJournal(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.Events(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
