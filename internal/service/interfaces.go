// Package service defines the interfaces for the application's collaborators.
package service

import (
	"context"
	"time"

	"github.com/rmachado/caixa/internal/authgate"
	"github.com/rmachado/caixa/internal/model"
)

// Storage is the persistence contract the surrounding application provides
// to the drawer front-end. The engine itself never touches it; the command
// layer loads movements into an in-memory ledger, runs the transition and
// persists the result.
type Storage interface {
	// Session operations. CreateSession persists the session together with
	// its opening movement in one transaction; CloseSession does the same
	// with the closing movement. At most one session may be open at a time,
	// enforced by the store as well as by the state machine.
	CreateSession(ctx context.Context, session *model.CashSession, opening model.Movement) error
	FindOpenSession(ctx context.Context) (*model.CashSession, error)
	FindLatestSession(ctx context.Context) (*model.CashSession, error)
	CloseSession(ctx context.Context, sessionID string, closedAt time.Time, closing model.Movement) error

	// Movement operations. Append-only; there is no update or delete.
	AppendMovement(ctx context.Context, sessionID string, m model.Movement) error
	ListMovements(ctx context.Context, sessionID string) ([]model.Movement, error)

	// Authorization attempt state, persisted so lockout survives across
	// one-shot command invocations.
	AuthState(ctx context.Context) (authgate.State, error)
	SaveAuthState(ctx context.Context, state authgate.State) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// Notifier is the user-visible feedback sink (the application's toasts).
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	Info(msg string)
}
