// Package session implements the cash drawer's state machine. The drawer
// is the sole writer of the session ledger; every transition runs its
// authorization check, validation and ledger append as one atomic step
// under a single mutex, so two concurrent withdrawals can never observe
// the same stale balance.
package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmachado/caixa/internal/authgate"
	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/ledger"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
	"github.com/rmachado/caixa/internal/report"
)

// Drawer orchestrates the Closed/Open session lifecycle over the ledger,
// consulting the authorization gate before any sensitive mutation.
type Drawer struct {
	gate    *authgate.Gate
	ledger  *ledger.Ledger
	session *model.CashSession
	now     func() time.Time
	mu      sync.Mutex
}

// NewDrawer creates a closed drawer guarded by the given gate.
func NewDrawer(gate *authgate.Gate) *Drawer {
	return &Drawer{
		gate:   gate,
		ledger: ledger.New(),
		now:    time.Now,
	}
}

// Resume rebuilds a drawer around an already-open session and its
// persisted movements.
func Resume(gate *authgate.Gate, sess model.CashSession, movements []model.Movement) (*Drawer, error) {
	if sess.Status != model.StatusOpen {
		return nil, fmt.Errorf("%w: cannot resume a %s session", common.ErrSessionState, sess.Status)
	}
	l, err := ledger.FromMovements(movements)
	if err != nil {
		return nil, err
	}
	d := NewDrawer(gate)
	d.ledger = l
	d.session = &sess
	return d, nil
}

// Session returns a copy of the current session, or nil when the drawer
// has never been opened.
func (d *Drawer) Session() *model.CashSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil
	}
	s := *d.session
	return &s
}

// Status reports the drawer's lifecycle state.
func (d *Drawer) Status() model.SessionStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status()
}

func (d *Drawer) status() model.SessionStatus {
	if d.session != nil && d.session.Status == model.StatusOpen {
		return model.StatusOpen
	}
	return model.StatusClosed
}

// Movements returns the ordered ledger entries of the current session.
func (d *Drawer) Movements() []model.Movement {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ledger.All()
}

// Balance returns the current expected cash balance.
func (d *Drawer) Balance() money.Amount {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ledger.Balance(d.ledger.All())
}

// Open transitions Closed -> Open, appending the opening movement.
func (d *Drawer) Open(cmd OpenCommand) (*model.Movement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status() == model.StatusOpen {
		return nil, fmt.Errorf("%w: a session is already open", common.ErrSessionState)
	}
	if cmd.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount cannot be negative", common.ErrInvalidAmount)
	}
	if err := d.gate.Verify(cmd.Credential, cmd.Tier()); err != nil {
		return nil, err
	}

	now := d.now()
	m := model.NewMovement(model.MovementOpening, cmd.Amount, "drawer opened", now)
	d.ledger = ledger.New()
	if err := d.ledger.Append(m); err != nil {
		return nil, err
	}
	d.session = &model.CashSession{
		ID:            uuid.NewString(),
		Status:        model.StatusOpen,
		OpeningAmount: cmd.Amount,
		OpenedAt:      now,
	}

	slog.Info("session opened", "session_id", d.session.ID, "opening_amount", cmd.Amount.String())
	return &m, nil
}

// Close transitions Open -> Closed. The closing movement carries the
// counted balance; once appended, the ledger is frozen and the session's
// report is returned.
func (d *Drawer) Close(cmd CloseCommand) (*report.Report, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status() != model.StatusOpen {
		return nil, fmt.Errorf("%w: no open session to close", common.ErrSessionState)
	}
	if cmd.CountedBalance.IsNegative() {
		return nil, fmt.Errorf("%w: counted balance cannot be negative", common.ErrInvalidAmount)
	}
	if err := d.gate.Verify(cmd.Credential, cmd.Tier()); err != nil {
		return nil, err
	}

	now := d.now()
	m := model.NewMovement(model.MovementClosing, cmd.CountedBalance, "drawer closed", now)
	if err := d.ledger.Append(m); err != nil {
		return nil, err
	}
	d.session.Status = model.StatusClosed
	d.session.ClosedAt = &now

	r := report.Generate(d.ledger.All(), d.session.OpeningAmount, cmd.CountedBalance)
	slog.Info("session closed",
		"session_id", d.session.ID,
		"expected", r.Reconciliation.ExpectedBalance.String(),
		"counted", cmd.CountedBalance.String(),
		"status", string(r.Reconciliation.Status))
	return &r, nil
}

// Supply injects cash into the till while the session is open.
func (d *Drawer) Supply(cmd SupplyCommand) (*model.Movement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status() != model.StatusOpen {
		return nil, fmt.Errorf("%w: session is not open", common.ErrSessionState)
	}
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: supply amount must be positive", common.ErrInvalidAmount)
	}
	if err := d.gate.Verify(cmd.Credential, cmd.Tier()); err != nil {
		return nil, err
	}

	description := cmd.Description
	if description == "" {
		description = "cash supply"
	}
	m := model.NewMovement(model.MovementSupply, cmd.Amount, description, d.now())
	if err := d.ledger.Append(m); err != nil {
		return nil, err
	}

	slog.Info("cash supplied", "session_id", d.session.ID, "amount", cmd.Amount.String())
	return &m, nil
}

// Withdraw removes cash from the till. The reason is mandatory and the
// amount may not exceed the current balance; the balance check happens
// inside the same critical section as the append.
func (d *Drawer) Withdraw(cmd WithdrawCommand) (*model.Movement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status() != model.StatusOpen {
		return nil, fmt.Errorf("%w: session is not open", common.ErrSessionState)
	}
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", common.ErrInvalidAmount)
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, common.ErrMissingReason
	}
	if err := d.gate.Verify(cmd.Credential, cmd.Tier()); err != nil {
		return nil, err
	}

	balance := ledger.Balance(d.ledger.All())
	if cmd.Amount.GreaterThan(balance) {
		return nil, fmt.Errorf("%w: %s requested, %s available",
			common.ErrInsufficientBalance, cmd.Amount, balance)
	}

	m := model.NewMovement(model.MovementWithdraw, cmd.Amount, reason, d.now())
	if err := d.ledger.Append(m); err != nil {
		return nil, err
	}

	slog.Info("cash withdrawn", "session_id", d.session.ID, "amount", cmd.Amount.String(), "reason", reason)
	return &m, nil
}

// RecordSale appends a completed sale from the checkout collaborator.
// Sales are not gated; they only require an open session and a valid
// payment method.
func (d *Drawer) RecordSale(ev SaleEvent) (*model.Movement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status() != model.StatusOpen {
		return nil, fmt.Errorf("%w: session is not open", common.ErrSessionState)
	}
	if !ev.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be positive", common.ErrInvalidAmount)
	}

	m := model.NewSale(ev.Amount, ev.Method, ev.Description, d.now())
	if err := d.ledger.Append(m); err != nil {
		return nil, err
	}

	slog.Info("sale recorded", "session_id", d.session.ID, "amount", ev.Amount.String(), "method", string(ev.Method))
	return &m, nil
}
