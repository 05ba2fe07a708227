package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rmachado/caixa/internal/authgate"
)

// AuthState loads the persisted authorization attempt state. The row is
// seeded by the migration, so a missing row means an unmigrated database.
func (s *SQLiteStorage) AuthState(ctx context.Context) (authgate.State, error) {
	var (
		state       authgate.State
		lockedUntil sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT failed_attempts, locked_until FROM auth_state WHERE id = 1`).
		Scan(&state.FailedAttempts, &lockedUntil)
	if err != nil {
		return authgate.State{}, fmt.Errorf("failed to load auth state: %w", err)
	}
	if lockedUntil.Valid {
		state.LockedUntil = lockedUntil.Time
	}
	return state, nil
}

// SaveAuthState persists the gate's attempt counter and lockout deadline.
func (s *SQLiteStorage) SaveAuthState(ctx context.Context, state authgate.State) error {
	var lockedUntil any
	if !state.LockedUntil.IsZero() {
		lockedUntil = state.LockedUntil
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE auth_state SET failed_attempts = ?, locked_until = ? WHERE id = 1`,
		state.FailedAttempts, lockedUntil)
	if err != nil {
		return fmt.Errorf("failed to save auth state: %w", err)
	}
	return nil
}
