package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// AppendMovement persists a single ledger entry. Movements are append-only;
// no update or delete statement exists in this package.
func (s *SQLiteStorage) AppendMovement(ctx context.Context, sessionID string, m model.Movement) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return insertMovement(ctx, tx, sessionID, m)
	})
}

func insertMovement(ctx context.Context, tx *sql.Tx, sessionID string, m model.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var method any
	if m.PaymentMethod != "" {
		method = string(m.PaymentMethod)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO movements (id, session_id, type, amount_cents, description, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, sessionID, string(m.Type), m.Amount.Cents(), m.Description, method, m.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// ListMovements returns a session's movements in append order.
func (s *SQLiteStorage) ListMovements(ctx context.Context, sessionID string) ([]model.Movement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, amount_cents, description, payment_method, created_at
		FROM movements WHERE session_id = ?
		ORDER BY created_at, rowid`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var movements []model.Movement
	for rows.Next() {
		var (
			m           model.Movement
			amountCents int64
			method      sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Type, &amountCents, &m.Description, &method, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		m.Amount = money.FromCents(amountCents)
		if method.Valid {
			m.PaymentMethod = model.PaymentMethod(method.String)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}

	return movements, nil
}
