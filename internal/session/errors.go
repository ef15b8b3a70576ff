package session

import (
	"errors"
	"fmt"
)

// The two error kinds every operation failure falls under. Callers branch on
// these with errors.Is; the narrower sentinels below wrap them.
var (
	// ErrAuthentication is returned when a login attempt names an unknown
	// handle or the pin does not match.
	ErrAuthentication = errors.New("authentication failed")

	// ErrValidation is returned when a business rule rejects an operation.
	ErrValidation = errors.New("validation failed")
)

var (
	ErrNoSession         = fmt.Errorf("%w: no active session", ErrValidation)
	ErrBadAmount         = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrUnknownReceiver   = fmt.Errorf("%w: unknown receiver", ErrValidation)
	ErrSelfTransfer      = fmt.Errorf("%w: cannot transfer to own account", ErrValidation)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrValidation)
	ErrNoCollateral      = fmt.Errorf("%w: no qualifying deposit for requested loan", ErrValidation)
	ErrBadCredentials    = fmt.Errorf("%w: confirmation credentials do not match", ErrValidation)
)
