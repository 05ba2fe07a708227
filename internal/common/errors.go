// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"time"
)

// Common application errors.
var (
	// Validation errors surfaced at the session boundary.
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMissingReason       = errors.New("withdrawal reason is required")
	ErrInsufficientBalance = errors.New("amount exceeds available balance")

	// Ledger-level contract violations.
	ErrInvalidMovement = errors.New("invalid movement")

	// Session state machine errors.
	ErrSessionState = errors.New("invalid session state")

	// Authorization errors. AuthError carries the sub-kind; this sentinel
	// lets callers match any rejection with errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	// Database errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
)

// AuthKind distinguishes the authorization rejection sub-kinds.
type AuthKind int

const (
	// AuthRetry means the credential was wrong but attempts remain.
	AuthRetry AuthKind = iota
	// AuthLocked means the gate is inside its timed lockout window.
	AuthLocked
)

// AuthError is returned by the authorization gate on rejection.
type AuthError struct {
	Until             time.Time
	Kind              AuthKind
	AttemptsRemaining int
}

func (e *AuthError) Error() string {
	if e.Kind == AuthLocked {
		return fmt.Sprintf("authorization locked until %s", e.Until.Format("15:04:05"))
	}
	return fmt.Sprintf("credential rejected (%d attempts remaining)", e.AttemptsRemaining)
}

// Is makes errors.Is(err, ErrUnauthorized) match any AuthError.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRejection reports whether err is a business rejection that leaves the
// session in its last valid state, as opposed to an infrastructure failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingReason) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInvalidMovement) ||
		errors.Is(err, ErrSessionState) ||
		errors.Is(err, ErrUnauthorized)
}
