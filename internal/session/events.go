package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind names a recorded session event.
type EventKind string

const (
	EventLogin    EventKind = "login"
	EventLogout   EventKind = "logout"
	EventTimeout  EventKind = "timeout"
	EventTransfer EventKind = "transfer"
	EventLoan     EventKind = "loan"
	EventClose    EventKind = "close"
)

// Event is one entry in the session audit trail.
type Event struct {
	At           time.Time
	Kind         EventKind
	Handle       string
	Counterparty string // receiver handle on transfers
	Amount       decimal.Decimal
}

// Recorder receives session events. Recording is best effort: a recorder
// failure is logged and never blocks the operation that produced the event.
type Recorder interface {
	Record(e Event) error
}
