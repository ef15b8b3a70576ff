// Package ledger implements the per-account movement ledger: appends,
// derived balance, summary figures and display orderings.
package ledger

import (
	"sort"
	"time"

	"github.com/averlane/bankist/internal/model"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Append records a signed amount and its timestamp as a single ledger entry.
// Sign conventions are the caller's business: positive is a deposit,
// negative a withdrawal.
func Append(acc *model.Account, amount decimal.Decimal, ts time.Time) {
	acc.Movements = append(acc.Movements, model.Movement{Amount: amount, Date: ts})
}

// Balance returns the sum of all movements. The balance is always derived;
// it is never stored on the account.
func Balance(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acc.Movements {
		total = total.Add(m.Amount)
	}
	return total
}

// Summarize computes the dashboard summary: total deposits, total
// withdrawals (signed, <= 0), and accrued interest. Interest accrues per
// deposit at the account's rate, but only when the resulting term is at
// least 1.0 — small deposits earn nothing.
func Summarize(acc *model.Account) model.Summary {
	s := model.Summary{In: decimal.Zero, Out: decimal.Zero, Interest: decimal.Zero}
	one := decimal.NewFromInt(1)

	for _, m := range acc.Movements {
		if m.Amount.IsPositive() {
			s.In = s.In.Add(m.Amount)

			term := m.Amount.Mul(acc.InterestRate).Div(oneHundred)
			if term.GreaterThanOrEqual(one) {
				s.Interest = s.Interest.Add(term)
			}
		} else {
			s.Out = s.Out.Add(m.Amount)
		}
	}
	return s
}

// OrderedView returns a copy of the movements sorted by amount. The sort is
// stable: equal amounts keep their original insertion order. The stored
// ledger order is never touched.
func OrderedView(acc *model.Account, descending bool) []model.Movement {
	out := make([]model.Movement, len(acc.Movements))
	copy(out, acc.Movements)

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out
}

// RecentFirst returns a copy of the movements in reverse insertion order,
// the default dashboard view (most recent entry on top).
func RecentFirst(acc *model.Account) []model.Movement {
	out := make([]model.Movement, len(acc.Movements))
	for i, m := range acc.Movements {
		out[len(out)-1-i] = m
	}
	return out
}
