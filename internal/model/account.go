// Package model defines the core domain types shared across the application.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a single bank account held by the directory.
type Account struct {
	Owner        string
	Handle       string // derived login handle, immutable once assigned
	Locale       string // BCP 47 tag, e.g. "pt-PT"
	Currency     string // ISO 4217 code, e.g. "EUR"
	Movements    []Movement
	InterestRate decimal.Decimal // percent applied per qualifying deposit
	PIN          int
}

// FirstName returns the owner's first name for the welcome banner.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return a.Owner
	}
	return fields[0]
}

// Summary holds the derived dashboard figures for an account.
type Summary struct {
	In       decimal.Decimal // sum of deposits
	Out      decimal.Decimal // sum of withdrawals, signed (<= 0)
	Interest decimal.Decimal // accrued interest on qualifying deposits
}
