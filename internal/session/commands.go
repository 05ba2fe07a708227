package session

import (
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// Command objects replace ad-hoc callback wiring: each sensitive action is
// an explicit message consumed by the drawer, which makes the
// gate-then-mutate atomicity enforceable in one place. Every command
// declares the security tier its authorization check runs at.

// OpenCommand opens a new session with an opening amount.
type OpenCommand struct {
	Credential string
	Amount     money.Amount
}

// Tier returns the declared security tier for opening the drawer.
func (OpenCommand) Tier() model.Tier { return model.TierHigh }

// CloseCommand closes the open session against a physically counted balance.
type CloseCommand struct {
	Credential     string
	CountedBalance money.Amount
}

// Tier returns the declared security tier for closing the drawer.
func (CloseCommand) Tier() model.Tier { return model.TierHigh }

// SupplyCommand injects cash into the till (suprimento).
type SupplyCommand struct {
	Credential  string
	Description string
	Amount      money.Amount
}

// Tier returns the declared security tier for a cash supply.
func (SupplyCommand) Tier() model.Tier { return model.TierMedium }

// WithdrawCommand removes cash from the till (sangria) with a mandatory reason.
type WithdrawCommand struct {
	Credential string
	Reason     string
	Amount     money.Amount
}

// Tier returns the declared security tier for a cash withdrawal.
func (WithdrawCommand) Tier() model.Tier { return model.TierHigh }

// SaleEvent is the completed-sale notification from the checkout
// collaborator. Sales are not a gated action and carry no credential.
type SaleEvent struct {
	Description string
	Method      model.PaymentMethod
	Amount      money.Amount
}
