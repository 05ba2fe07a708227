package model

import (
	"time"

	"github.com/rmachado/caixa/internal/money"
)

// SessionStatus is the drawer's lifecycle state.
type SessionStatus string

const (
	StatusClosed SessionStatus = "closed"
	StatusOpen   SessionStatus = "open"
)

// CashSession is one daily trading period between a drawer's opening and
// its closing. At most one session may be open at a time.
type CashSession struct {
	OpenedAt      time.Time
	ClosedAt      *time.Time
	ID            string
	Status        SessionStatus
	OpeningAmount money.Amount
}

// Tier is the security tier a sensitive action declares. Verification does
// not branch on it today; it only drives the warning shown to the operator
// and log fields, but it is kept first-class as a designed extension point.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
)

// Warning returns the operator-facing text shown before the credential
// prompt for an action of this tier.
func (t Tier) Warning() string {
	if t == TierHigh {
		return "High-security operation: manager credential required."
	}
	return "Supervisor credential required to continue."
}
