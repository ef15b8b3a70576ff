package ledger

import (
	"testing"
	"time"

	"github.com/averlane/bankist/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(rate float64, amounts ...int64) *model.Account {
	acc := &model.Account{
		Owner:        "Test Owner",
		InterestRate: decimal.NewFromFloat(rate),
	}
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, a := range amounts {
		acc.Movements = append(acc.Movements, model.Movement{
			Amount: decimal.NewFromInt(a),
			Date:   base.AddDate(0, 0, i),
		})
	}
	return acc
}

func amounts(movements []model.Movement) []string {
	out := make([]string, len(movements))
	for i, m := range movements {
		out[i] = m.Amount.String()
	}
	return out
}

func TestAppend(t *testing.T) {
	acc := account(1.2)
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	Append(acc, decimal.NewFromInt(250), ts)

	require.Len(t, acc.Movements, 1)
	assert.True(t, acc.Movements[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, ts, acc.Movements[0].Date)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		amounts  []int64
	}{
		{name: "empty ledger", amounts: nil, expected: "0"},
		{name: "deposits only", amounts: []int64{200, 450}, expected: "650"},
		{name: "mixed", amounts: []int64{200, 450, -400, 3000, -650, -130, 70, 1300}, expected: "3840"},
		{name: "negative balance", amounts: []int64{100, -400}, expected: "-300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := account(1.2, tt.amounts...)
			assert.Equal(t, tt.expected, Balance(acc).String())
		})
	}
}

func TestBalanceIsAlwaysSumOfMovements(t *testing.T) {
	acc := account(1.2, 200, 450)

	Append(acc, decimal.NewFromInt(-400), time.Now())
	assert.Equal(t, "250", Balance(acc).String())

	Append(acc, decimal.NewFromInt(1000), time.Now())
	assert.Equal(t, "1250", Balance(acc).String())
}

func TestSummarize(t *testing.T) {
	// The classic demo account: deposits 200+450+3000+70+1300, withdrawals
	// -400-650-130. At 1.2% only the 70 deposit misses the 1.0 interest
	// cutoff (0.84).
	acc := account(1.2, 200, 450, -400, 3000, -650, -130, 70, 1300)

	s := Summarize(acc)

	assert.Equal(t, "5020", s.In.String())
	assert.Equal(t, "-1180", s.Out.String())
	assert.Equal(t, "59.4", s.Interest.String())
}

func TestSummarizeInterestCutoff(t *testing.T) {
	// At 1% a deposit of exactly 100 yields a term of exactly 1.0, which
	// still qualifies; 99 yields 0.99 and does not.
	acc := account(1, 100, 99)

	s := Summarize(acc)

	assert.Equal(t, "1", s.Interest.String())
}

func TestSummarizeEmptyLedger(t *testing.T) {
	s := Summarize(account(1.5))

	assert.True(t, s.In.IsZero())
	assert.True(t, s.Out.IsZero())
	assert.True(t, s.Interest.IsZero())
}

func TestOrderedView(t *testing.T) {
	acc := account(1, 200, 450, -400, 70)

	desc := OrderedView(acc, true)
	asc := OrderedView(acc, false)

	assert.Equal(t, []string{"450", "200", "70", "-400"}, amounts(desc))
	assert.Equal(t, []string{"-400", "70", "200", "450"}, amounts(asc))

	// With distinct amounts the two views are exact reverses.
	for i := range desc {
		assert.True(t, desc[i].Amount.Equal(asc[len(asc)-1-i].Amount))
	}

	// The stored order never changes.
	assert.Equal(t, []string{"200", "450", "-400", "70"}, amounts(acc.Movements))
}

func TestOrderedViewStableTies(t *testing.T) {
	acc := account(1)
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 0, 1)
	Append(acc, decimal.NewFromInt(100), first)
	Append(acc, decimal.NewFromInt(100), second)

	for _, descending := range []bool{true, false} {
		view := OrderedView(acc, descending)
		require.Len(t, view, 2)
		assert.Equal(t, first, view[0].Date, "equal amounts must keep insertion order")
		assert.Equal(t, second, view[1].Date)
	}
}

func TestRecentFirst(t *testing.T) {
	acc := account(1, 200, 450, -400)

	view := RecentFirst(acc)

	assert.Equal(t, []string{"-400", "450", "200"}, amounts(view))
	assert.Equal(t, []string{"200", "450", "-400"}, amounts(acc.Movements))
}
