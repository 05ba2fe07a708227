package ledger

import (
	"testing"

	"github.com/rmachado/caixa/internal/model"
)

func TestReconcile(t *testing.T) {
	movements := sessionFixture(t) // expected balance R$155,00

	tests := []struct {
		name            string
		wantStatus      model.ReconciliationStatus
		countedCents    int64
		wantDiscrepancy int64
	}{
		{name: "exact match", countedCents: 15500, wantStatus: model.ReconciliationMatch, wantDiscrepancy: 0},
		{name: "surplus", countedCents: 16500, wantStatus: model.ReconciliationSurplus, wantDiscrepancy: 1000},
		{name: "shortage", countedCents: 15000, wantStatus: model.ReconciliationShortage, wantDiscrepancy: -500},
		{name: "one cent short", countedCents: 15499, wantStatus: model.ReconciliationShortage, wantDiscrepancy: -1},
		{name: "one cent over", countedCents: 15501, wantStatus: model.ReconciliationSurplus, wantDiscrepancy: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(movements, cents(tt.countedCents))

			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.Discrepancy.Cents() != tt.wantDiscrepancy {
				t.Errorf("discrepancy = %d cents, want %d", got.Discrepancy.Cents(), tt.wantDiscrepancy)
			}
			if got.ExpectedBalance.Cents() != 15500 {
				t.Errorf("expected balance = %d cents, want 15500", got.ExpectedBalance.Cents())
			}
			if got.ActualBalance.Cents() != tt.countedCents {
				t.Errorf("actual balance = %d cents, want %d", got.ActualBalance.Cents(), tt.countedCents)
			}
		})
	}
}
