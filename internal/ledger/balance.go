package ledger

import (
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// Balance derives the physical cash balance from a movement sequence:
// opening + money-tagged sales + supplies - withdrawals. Sales paid by
// credit, debit or pix never touch the drawer and are excluded.
func Balance(movements []model.Movement) money.Amount {
	var balance money.Amount
	for _, m := range movements {
		switch m.Type {
		case model.MovementOpening:
			balance = balance.Add(m.Amount)
		case model.MovementSale:
			if m.PaymentMethod == model.PaymentMoney {
				balance = balance.Add(m.Amount)
			}
		case model.MovementSupply:
			balance = balance.Add(m.Amount)
		case model.MovementWithdraw:
			balance = balance.Sub(m.Amount)
		case model.MovementClosing:
			// Closing records the counted balance; it does not alter the
			// expected one.
		}
	}
	return balance
}

// Summary aggregates all sale movements by payment method.
func Summary(movements []model.Movement) model.PaymentSummary {
	var s model.PaymentSummary
	for _, m := range movements {
		if m.Type != model.MovementSale {
			continue
		}
		switch m.PaymentMethod {
		case model.PaymentMoney:
			s.Money = s.Money.Add(m.Amount)
		case model.PaymentCredit:
			s.Credit = s.Credit.Add(m.Amount)
		case model.PaymentDebit:
			s.Debit = s.Debit.Add(m.Amount)
		case model.PaymentPix:
			s.Pix = s.Pix.Add(m.Amount)
		}
	}
	return s
}

// TotalSales is the daily gross: every sale regardless of payment method.
// Distinct from Balance, which only sees cash.
func TotalSales(movements []model.Movement) money.Amount {
	return Summary(movements).Total()
}

// TotalSupplies sums all cash injections.
func TotalSupplies(movements []model.Movement) money.Amount {
	return totalOf(movements, model.MovementSupply)
}

// TotalWithdrawals sums all cash removals.
func TotalWithdrawals(movements []model.Movement) money.Amount {
	return totalOf(movements, model.MovementWithdraw)
}

func totalOf(movements []model.Movement, t model.MovementType) money.Amount {
	var total money.Amount
	for _, m := range movements {
		if m.Type == t {
			total = total.Add(m.Amount)
		}
	}
	return total
}
