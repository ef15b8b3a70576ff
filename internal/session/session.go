// Package session implements the single-user banking session: the state
// machine over the account directory and per-account ledgers, the
// inactivity countdown, and the rendering boundary to the view layer.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/averlane/bankist/internal/directory"
	"github.com/averlane/bankist/internal/format"
	"github.com/averlane/bankist/internal/ledger"
	"github.com/averlane/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// IdleTimeoutSeconds is how long a session stays open without activity.
const IdleTimeoutSeconds = 300

var pointOne = decimal.New(1, -1) // 0.1

// Session tracks the single current account, if any, and orchestrates every
// operation against the directory and ledgers. All methods are synchronous
// and must be called from a single goroutine; the app's event loop is the
// only caller.
type Session struct {
	dir      *directory.Directory
	view     View
	recorder Recorder
	now      func() time.Time
	current  *model.Account
	timer    IdleTimer
	order    Order
	sorted   bool
	idleSecs int
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRecorder attaches an event recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithIdleTimeout overrides the countdown length in seconds.
func WithIdleTimeout(seconds int) Option {
	return func(s *Session) {
		if seconds > 0 {
			s.idleSecs = seconds
		}
	}
}

// New creates a logged-out session over the given directory, rendering into
// the given view.
func New(dir *directory.Directory, view View, opts ...Option) *Session {
	s := &Session{
		dir:      dir,
		view:     view,
		now:      time.Now,
		idleSecs: IdleTimeoutSeconds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the logged-in account, or nil.
func (s *Session) Current() *model.Account {
	return s.current
}

// LoggedIn reports whether an account is active.
func (s *Session) LoggedIn() bool {
	return s.current != nil
}

// Order returns the current movement display ordering.
func (s *Session) Order() Order {
	return s.order
}

// Login authenticates by handle and pin. On success the session switches to
// the matched account, the idle countdown restarts, and the full dashboard
// is rendered. On failure the session state is untouched: a logged-out
// session stays logged out and a live one stays on its account.
func (s *Session) Login(handle string, pin int) error {
	acc, ok := s.dir.FindByHandle(handle)
	if !ok {
		return fmt.Errorf("%w: unknown handle %q", ErrAuthentication, handle)
	}
	if acc.PIN != pin {
		return fmt.Errorf("%w: pin mismatch for %q", ErrAuthentication, handle)
	}

	s.current = acc
	s.sorted = false
	s.order = OrderRecentFirst
	s.timer.Start(s.idleSecs)

	s.view.ClearFields(FieldsAll)
	s.view.RenderWelcome(acc.FirstName())
	s.view.RenderTimer(format.Clock(s.timer.Remaining()))
	s.refreshDashboard()

	s.record(Event{Kind: EventLogin, Handle: acc.Handle})
	slog.Info("session opened", "handle", acc.Handle)
	return nil
}

// Transfer moves amount from the current account to the account named by
// toHandle. Both ledger appends happen together or not at all. The transfer
// form is blanked before validation, as the reference behavior demands.
func (s *Session) Transfer(toHandle string, amount decimal.Decimal) error {
	s.view.ClearFields(FieldsTransfer)

	if s.current == nil {
		return ErrNoSession
	}
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	receiver, ok := s.dir.FindByHandle(toHandle)
	if !ok {
		return ErrUnknownReceiver
	}
	if receiver.Handle == s.current.Handle {
		return ErrSelfTransfer
	}
	if ledger.Balance(s.current).LessThan(amount) {
		return ErrInsufficientFunds
	}

	ledger.Append(s.current, amount.Neg(), s.now())
	ledger.Append(receiver, amount, s.now())
	s.refreshDashboard()

	s.record(Event{Kind: EventTransfer, Handle: s.current.Handle, Counterparty: receiver.Handle, Amount: amount})
	slog.Info("transfer completed", "from", s.current.Handle, "to", receiver.Handle, "amount", amount)
	return nil
}

// RequestLoan grants a loan of floor(amount) when some past movement covers
// at least 10% of it. The loan form is blanked whether or not the request
// succeeds.
func (s *Session) RequestLoan(amount decimal.Decimal) error {
	s.view.ClearFields(FieldsLoan)

	if s.current == nil {
		return ErrNoSession
	}
	granted := amount.Floor()
	if !granted.IsPositive() {
		return ErrBadAmount
	}
	if !hasCollateral(s.current, granted) {
		return ErrNoCollateral
	}

	ledger.Append(s.current, granted, s.now())
	s.refreshDashboard()

	s.record(Event{Kind: EventLoan, Handle: s.current.Handle, Amount: granted})
	slog.Info("loan granted", "handle", s.current.Handle, "amount", granted)
	return nil
}

// hasCollateral reports whether any single past movement is at least 10% of
// the requested (already floored) loan amount.
func hasCollateral(acc *model.Account, granted decimal.Decimal) bool {
	threshold := granted.Mul(pointOne)
	for _, m := range acc.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}

// CloseAccount removes the current account from the directory after the
// user re-confirms handle and pin. The confirmation fields are wiped no
// matter what; a failed attempt must not leave credentials on screen.
func (s *Session) CloseAccount(handle string, pin int) error {
	s.view.ClearFields(FieldsClose)

	if s.current == nil {
		return ErrNoSession
	}
	if handle != s.current.Handle || pin != s.current.PIN {
		return ErrBadCredentials
	}

	closed := s.current
	s.dir.Remove(closed)
	s.current = nil
	s.timer.Stop()
	s.view.RenderLoggedOut()

	s.record(Event{Kind: EventClose, Handle: closed.Handle})
	slog.Info("account closed", "handle", closed.Handle)
	return nil
}

// ToggleSort flips between descending and ascending amount order and
// re-renders. The stored ledger order never changes.
func (s *Session) ToggleSort() error {
	if s.current == nil {
		return ErrNoSession
	}
	if s.sorted {
		s.order = OrderAmountAsc
	} else {
		s.order = OrderAmountDesc
	}
	s.sorted = !s.sorted
	s.refreshDashboard()
	return nil
}

// ShowDefault re-renders the movements in the default reverse-chronological
// order. The sort toggle itself is left alone.
func (s *Session) ShowDefault() error {
	if s.current == nil {
		return ErrNoSession
	}
	s.order = OrderRecentFirst
	s.refreshDashboard()
	return nil
}

// Logout ends the session and renders the logged-out prompt.
func (s *Session) Logout() {
	if s.current == nil {
		return
	}
	handle := s.current.Handle
	s.current = nil
	s.timer.Stop()
	s.view.RenderLoggedOut()

	s.record(Event{Kind: EventLogout, Handle: handle})
	slog.Info("session closed", "handle", handle)
}

// IdleGeneration returns the generation of the running countdown, for tick
// scheduling.
func (s *Session) IdleGeneration() int {
	return s.timer.Generation()
}

// TickIdle advances the countdown belonging to the given generation by one
// second. It returns false when the countdown is no longer live: the
// generation is stale, or it just hit zero and forced a logout. A false
// return tells the caller to stop ticking.
func (s *Session) TickIdle(generation int) bool {
	if !s.timer.Live(generation) {
		return false
	}

	remaining := s.timer.Tick()
	s.view.RenderTimer(format.Clock(remaining))

	if remaining <= 0 {
		s.timer.Stop()
		s.expire()
		return false
	}
	return true
}

// expire is the countdown-driven logout.
func (s *Session) expire() {
	if s.current == nil {
		return
	}
	handle := s.current.Handle
	s.current = nil
	s.view.RenderLoggedOut()

	s.record(Event{Kind: EventTimeout, Handle: handle})
	slog.Info("session expired", "handle", handle)
}

// refreshDashboard rebuilds the dashboard snapshot for the current account
// and hands it to the view.
func (s *Session) refreshDashboard() {
	acc := s.current
	now := s.now()

	var movements []model.Movement
	switch s.order {
	case OrderAmountDesc:
		movements = ledger.OrderedView(acc, true)
	case OrderAmountAsc:
		movements = ledger.OrderedView(acc, false)
	default:
		movements = ledger.RecentFirst(acc)
	}

	rows := make([]MovementRow, len(movements))
	for i, m := range movements {
		rows[i] = MovementRow{
			Kind:        m.Kind(),
			DateLabel:   format.DateLabel(now, m.Date, acc.Locale),
			AmountLabel: format.Money(m.Amount, acc.Locale, acc.Currency),
			Amount:      m.Amount,
		}
	}

	balance := ledger.Balance(acc)
	summary := ledger.Summarize(acc)

	s.view.RenderDashboard(Dashboard{
		Rows:          rows,
		BalanceLabel:  format.Money(balance, acc.Locale, acc.Currency),
		InLabel:       format.Money(summary.In, acc.Locale, acc.Currency),
		OutLabel:      format.Money(summary.Out.Abs(), acc.Locale, acc.Currency),
		InterestLabel: format.Money(summary.Interest, acc.Locale, acc.Currency),
		DateLabel:     format.DateTime(now, acc.Locale),
		Order:         s.order,
		Balance:       balance,
		Summary:       summary,
	})
}

// record hands an event to the recorder, if any. Failures are logged and
// swallowed; the audit trail never blocks banking.
func (s *Session) record(e Event) {
	if s.recorder == nil {
		return
	}
	e.At = s.now()
	if err := s.recorder.Record(e); err != nil {
		slog.Warn("failed to record session event", "kind", e.Kind, "error", err)
	}
}
