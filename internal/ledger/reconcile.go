package ledger

import (
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// Reconcile compares a physically counted balance against the
// ledger-expected one. Equality is exact: amounts are integer cents, so no
// epsilon is involved. A positive discrepancy means the drawer holds more
// than expected.
func Reconcile(movements []model.Movement, counted money.Amount) model.ReconciliationResult {
	expected := Balance(movements)
	discrepancy := counted.Sub(expected)

	status := model.ReconciliationMatch
	switch {
	case discrepancy.IsPositive():
		status = model.ReconciliationSurplus
	case discrepancy.IsNegative():
		status = model.ReconciliationShortage
	}

	return model.ReconciliationResult{
		ExpectedBalance: expected,
		ActualBalance:   counted,
		Discrepancy:     discrepancy,
		Status:          status,
	}
}
