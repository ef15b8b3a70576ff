package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a ledger entry by its sign.
type MovementKind string

const (
	// MovementDeposit represents money entering the account.
	MovementDeposit MovementKind = "deposit"
	// MovementWithdrawal represents money leaving the account.
	MovementWithdrawal MovementKind = "withdrawal"
)

// Movement is a single signed ledger entry and its timestamp. The amount and
// date travel together so the two can never fall out of alignment.
type Movement struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Kind reports whether the movement is a deposit or a withdrawal.
// Zero counts as a withdrawal, matching the dashboard's display rule.
func (m Movement) Kind() MovementKind {
	if m.Amount.IsPositive() {
		return MovementDeposit
	}
	return MovementWithdrawal
}
