package model

import "github.com/rmachado/caixa/internal/money"

// ReconciliationStatus classifies the discrepancy between the counted and
// the ledger-expected balance.
type ReconciliationStatus string

const (
	ReconciliationMatch    ReconciliationStatus = "match"
	ReconciliationSurplus  ReconciliationStatus = "surplus"
	ReconciliationShortage ReconciliationStatus = "shortage"
)

// ReconciliationResult compares the physically counted drawer balance
// against the expected balance derived from the ledger. Discrepancy is
// signed: positive means the drawer holds more than expected.
type ReconciliationResult struct {
	Status          ReconciliationStatus `json:"status"`
	ExpectedBalance money.Amount         `json:"expectedBalance"`
	ActualBalance   money.Amount         `json:"actualBalance"`
	Discrepancy     money.Amount         `json:"discrepancy"`
}

// PaymentSummary aggregates sale totals per payment method. It is derived
// solely from sale movements and is independent of the cash balance.
type PaymentSummary struct {
	Money  money.Amount `json:"money"`
	Credit money.Amount `json:"credit"`
	Debit  money.Amount `json:"debit"`
	Pix    money.Amount `json:"pix"`
}

// Total returns gross sales across every payment method.
func (s PaymentSummary) Total() money.Amount {
	return s.Money.Add(s.Credit).Add(s.Debit).Add(s.Pix)
}
