// Package ledger holds the append-only movement log for a cash session and
// the read-only calculations derived from it.
package ledger

import (
	"fmt"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/model"
)

// Ledger is the ordered, append-only log of monetary events for one
// session. It has a single writer (the session state machine) and is not
// internally synchronized; the writer serializes access.
type Ledger struct {
	movements []model.Movement
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// FromMovements rebuilds a ledger from previously persisted movements,
// re-checking the append contract on every entry.
func FromMovements(movements []model.Movement) (*Ledger, error) {
	l := New()
	for _, m := range movements {
		if err := l.Append(m); err != nil {
			return nil, fmt.Errorf("movement %s: %w", m.ID, err)
		}
	}
	return l, nil
}

// Append adds a movement to the log. It fails if the movement violates the
// ledger contract, if its timestamp regresses, or if the session has
// already been closed by a closing movement. On failure the ledger is
// unchanged.
func (l *Ledger) Append(m model.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if n := len(l.movements); n > 0 {
		last := l.movements[n-1]
		if last.Type == model.MovementClosing {
			return fmt.Errorf("%w: ledger is frozen after closing", common.ErrSessionState)
		}
		if m.Timestamp.Before(last.Timestamp) {
			return fmt.Errorf("%w: timestamp regressed", common.ErrInvalidMovement)
		}
	}
	l.movements = append(l.movements, m)
	return nil
}

// All returns the ordered movements. The returned slice is a copy; the log
// itself can only grow through Append.
func (l *Ledger) All() []model.Movement {
	out := make([]model.Movement, len(l.movements))
	copy(out, l.movements)
	return out
}

// Len returns the number of movements.
func (l *Ledger) Len() int {
	return len(l.movements)
}

// Closed reports whether a closing movement has frozen the ledger.
func (l *Ledger) Closed() bool {
	n := len(l.movements)
	return n > 0 && l.movements[n-1].Type == model.MovementClosing
}
