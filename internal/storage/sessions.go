package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// CreateSession persists a freshly opened session together with its
// opening movement in one transaction.
func (s *SQLiteStorage) CreateSession(ctx context.Context, session *model.CashSession, opening model.Movement) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sessions (id, status, opening_cents, opened_at)
			VALUES (?, ?, ?, ?)`,
			session.ID, string(session.Status), session.OpeningAmount.Cents(), session.OpenedAt)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		if err := insertMovement(ctx, tx, session.ID, opening); err != nil {
			return err
		}
		return nil
	})
}

// FindOpenSession returns the currently open session, or ErrNotFound.
func (s *SQLiteStorage) FindOpenSession(ctx context.Context) (*model.CashSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, opening_cents, opened_at, closed_at
		FROM sessions WHERE status = 'open'`)
	return scanSession(row)
}

// FindLatestSession returns the most recently opened session regardless of
// status, or ErrNotFound when no session was ever opened.
func (s *SQLiteStorage) FindLatestSession(ctx context.Context) (*model.CashSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, opening_cents, opened_at, closed_at
		FROM sessions ORDER BY opened_at DESC LIMIT 1`)
	return scanSession(row)
}

// CloseSession marks the session closed and appends its closing movement
// in one transaction.
func (s *SQLiteStorage) CloseSession(ctx context.Context, sessionID string, closedAt time.Time, closing model.Movement) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE sessions SET status = 'closed', closed_at = ?
			WHERE id = ? AND status = 'open'`,
			closedAt, sessionID)
		if err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check close result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("open session %s: %w", sessionID, common.ErrNotFound)
		}
		return insertMovement(ctx, tx, sessionID, closing)
	})
}

func scanSession(row *sql.Row) (*model.CashSession, error) {
	var (
		sess         model.CashSession
		status       string
		openingCents int64
		closedAt     sql.NullTime
	)
	err := row.Scan(&sess.ID, &status, &openingCents, &sess.OpenedAt, &closedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	sess.Status = model.SessionStatus(status)
	sess.OpeningAmount = money.FromCents(openingCents)
	if closedAt.Valid {
		t := closedAt.Time
		sess.ClosedAt = &t
	}
	return &sess, nil
}
