package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/money"
)

// MovementType identifies the kind of ledger entry.
type MovementType string

const (
	MovementOpening  MovementType = "opening"
	MovementSale     MovementType = "sale"
	MovementSupply   MovementType = "supply"
	MovementWithdraw MovementType = "withdraw"
	MovementClosing  MovementType = "closing"
)

func (t MovementType) valid() bool {
	switch t {
	case MovementOpening, MovementSale, MovementSupply, MovementWithdraw, MovementClosing:
		return true
	}
	return false
}

// PaymentMethod tags how a sale was paid. Present only on sale movements.
type PaymentMethod string

const (
	PaymentMoney  PaymentMethod = "money"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// ParsePaymentMethod validates a payment method coming from the checkout
// collaborator or user input.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMoney, PaymentCredit, PaymentDebit, PaymentPix:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: unknown payment method %q", common.ErrInvalidMovement, s)
}

// Movement is a single immutable entry in the session ledger. Amount is a
// non-negative magnitude; the movement type determines its sign in the
// balance formula.
type Movement struct {
	Timestamp     time.Time     `json:"timestamp"`
	ID            string        `json:"id"`
	Type          MovementType  `json:"type"`
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Amount        money.Amount  `json:"amount"`
}

// NewMovement creates a movement with a fresh ID and the given timestamp.
func NewMovement(t MovementType, amount money.Amount, description string, ts time.Time) Movement {
	return Movement{
		ID:          uuid.NewString(),
		Type:        t,
		Amount:      amount,
		Description: description,
		Timestamp:   ts,
	}
}

// NewSale creates a sale movement carrying its payment method.
func NewSale(amount money.Amount, method PaymentMethod, description string, ts time.Time) Movement {
	m := NewMovement(MovementSale, amount, description, ts)
	m.PaymentMethod = method
	return m
}

// Validate enforces the ledger append contract.
func (m Movement) Validate() error {
	if !m.Type.valid() {
		return fmt.Errorf("%w: unknown type %q", common.ErrInvalidMovement, m.Type)
	}
	if m.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", common.ErrInvalidMovement, m.Amount)
	}
	if m.Type == MovementSale {
		if _, err := ParsePaymentMethod(string(m.PaymentMethod)); err != nil {
			return fmt.Errorf("%w: sale without payment method", common.ErrInvalidMovement)
		}
	} else if m.PaymentMethod != "" {
		return fmt.Errorf("%w: payment method on %s movement", common.ErrInvalidMovement, m.Type)
	}
	return nil
}
