package session

import (
	"github.com/averlane/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// Order is the display ordering of the movement list. The default is most
// recent first; the amount orderings apply once the user opts into sorting.
type Order int

const (
	OrderRecentFirst Order = iota
	OrderAmountDesc
	OrderAmountAsc
)

// FieldSet is a bitmask naming input fields the view should blank.
type FieldSet uint8

const (
	FieldsLogin FieldSet = 1 << iota
	FieldsTransfer
	FieldsLoan
	FieldsClose

	FieldsAll = FieldsLogin | FieldsTransfer | FieldsLoan | FieldsClose
)

// MovementRow is one rendered ledger entry.
type MovementRow struct {
	Kind        model.MovementKind
	DateLabel   string
	AmountLabel string
	Amount      decimal.Decimal
}

// Dashboard is the full rendered state of a logged-in account.
type Dashboard struct {
	Rows          []MovementRow
	BalanceLabel  string
	InLabel       string
	OutLabel      string // absolute value for display
	InterestLabel string
	DateLabel     string // current date and time, locale formatted
	Order         Order
	Balance       decimal.Decimal
	Summary       model.Summary
}

// View is the presentation collaborator the session renders into. The
// session only ever hands it plain data; how it is drawn is not the
// session's concern.
type View interface {
	RenderDashboard(d Dashboard)
	RenderWelcome(firstName string)
	RenderLoggedOut()
	RenderTimer(clock string)
	ClearFields(fields FieldSet)
}
