// Package report produces the exportable closing summary of a cash session.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rmachado/caixa/internal/ledger"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

// Report is a read-only snapshot of a session's ledger plus its
// reconciliation. Export and print collaborators only serialize it.
type Report struct {
	Date             time.Time                  `json:"date"`
	Movements        []model.Movement           `json:"movements"`
	Reconciliation   model.ReconciliationResult `json:"reconciliation"`
	Payments         model.PaymentSummary       `json:"payments"`
	OpeningAmount    money.Amount               `json:"openingAmount"`
	CountedBalance   money.Amount               `json:"countedBalance"`
	TotalSales       money.Amount               `json:"totalSales"`
	TotalSupplies    money.Amount               `json:"totalSupplies"`
	TotalWithdrawals money.Amount               `json:"totalWithdrawals"`
}

// Generate builds a report from a movement sequence. It is a pure function
// of its inputs: generating twice over an unchanged ledger yields
// byte-identical output. The report date is the opening movement's
// timestamp, not the wall clock.
func Generate(movements []model.Movement, openingAmount, countedBalance money.Amount) Report {
	var date time.Time
	if len(movements) > 0 {
		date = movements[0].Timestamp
	}

	ordered := make([]model.Movement, len(movements))
	copy(ordered, movements)

	return Report{
		Date:             date,
		OpeningAmount:    openingAmount,
		CountedBalance:   countedBalance,
		Reconciliation:   ledger.Reconcile(movements, countedBalance),
		Payments:         ledger.Summary(movements),
		TotalSales:       ledger.TotalSales(movements),
		TotalSupplies:    ledger.TotalSupplies(movements),
		TotalWithdrawals: ledger.TotalWithdrawals(movements),
		Movements:        ordered,
	}
}

// WriteJSON serializes the report as an indented JSON document, the
// downloadable export format.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
