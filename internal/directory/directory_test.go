package directory

import (
	"testing"
	"time"

	"github.com/averlane/bankist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveHandles(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		handle string
	}{
		{name: "two names", owner: "Jessica Davis", handle: "jd"},
		{name: "three names", owner: "Steven Thomas Williams", handle: "stw"},
		{name: "single name", owner: "Cher", handle: "c"},
		{name: "extra whitespace", owner: "  Sarah   Smith ", handle: "ss"},
		{name: "mixed case", owner: "ALEX domas", handle: "ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := New([]*model.Account{{Owner: tt.owner}})
			acc := dir.Accounts()[0]
			assert.Equal(t, tt.handle, acc.Handle)
		})
	}
}

func TestDeriveHandlesIdempotent(t *testing.T) {
	dir := New([]*model.Account{{Owner: "Alex Domas"}})
	acc := dir.Accounts()[0]

	dir.DeriveHandles()
	dir.DeriveHandles()

	assert.Equal(t, "ad", acc.Handle)
}

func TestFindByHandle(t *testing.T) {
	dir := New([]*model.Account{
		{Owner: "Alex Domas"},
		{Owner: "Jessica Davis"},
	})

	acc, ok := dir.FindByHandle("jd")
	require.True(t, ok)
	assert.Equal(t, "Jessica Davis", acc.Owner)

	_, ok = dir.FindByHandle("nobody")
	assert.False(t, ok)
}

func TestHandleCollisionLastWins(t *testing.T) {
	// Two owners with the same initials: lookup resolves to the later
	// account. A known limitation of the handle scheme.
	first := &model.Account{Owner: "Jessica Davis"}
	second := &model.Account{Owner: "James Dean"}
	dir := New([]*model.Account{first, second})

	acc, ok := dir.FindByHandle("jd")
	require.True(t, ok)
	assert.Same(t, second, acc)
}

func TestRemove(t *testing.T) {
	first := &model.Account{Owner: "Alex Domas"}
	second := &model.Account{Owner: "Jessica Davis"}
	dir := New([]*model.Account{first, second})

	dir.Remove(first)

	assert.Equal(t, 1, dir.Len())
	_, ok := dir.FindByHandle("ad")
	assert.False(t, ok)

	// Removing again is a no-op.
	dir.Remove(first)
	assert.Equal(t, 1, dir.Len())

	_, ok = dir.FindByHandle("jd")
	assert.True(t, ok)
}

func TestSeed(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	dir := Seed(now)

	require.Equal(t, 4, dir.Len())

	for _, handle := range []string{"ad", "jd", "stw", "ss"} {
		_, ok := dir.FindByHandle(handle)
		assert.True(t, ok, "expected seeded handle %q", handle)
	}

	acc, _ := dir.FindByHandle("ad")
	require.Len(t, acc.Movements, 8)
	assert.Equal(t, "200", acc.Movements[0].Amount.String())
	assert.Equal(t, 1111, acc.PIN)
	assert.Equal(t, "pt-PT", acc.Locale)
	assert.Equal(t, "EUR", acc.Currency)

	// Most recent seeded movement lands on the seed day itself.
	last := acc.Movements[len(acc.Movements)-1]
	assert.Equal(t, now, last.Date)

	// Movement dates never run ahead of their ledger order.
	for i := 1; i < len(acc.Movements); i++ {
		assert.False(t, acc.Movements[i].Date.Before(acc.Movements[i-1].Date))
	}
}
