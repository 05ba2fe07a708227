package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

func closedSessionMovements() []model.Movement {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	ts := func(m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

	return []model.Movement{
		{ID: "m1", Type: model.MovementOpening, Amount: money.FromCents(10000), Description: "drawer opened", Timestamp: ts(0)},
		{ID: "m2", Type: model.MovementSale, Amount: money.FromCents(5000), PaymentMethod: model.PaymentMoney, Description: "service order 17", Timestamp: ts(5)},
		{ID: "m3", Type: model.MovementSale, Amount: money.FromCents(3000), PaymentMethod: model.PaymentPix, Description: "service order 18", Timestamp: ts(10)},
		{ID: "m4", Type: model.MovementSupply, Amount: money.FromCents(2000), Description: "change from safe", Timestamp: ts(15)},
		{ID: "m5", Type: model.MovementWithdraw, Amount: money.FromCents(1500), Description: "fornecedor", Timestamp: ts(20)},
		{ID: "m6", Type: model.MovementClosing, Amount: money.FromCents(15000), Description: "drawer closed", Timestamp: ts(600)},
	}
}

func TestGenerate(t *testing.T) {
	movements := closedSessionMovements()

	r := Generate(movements, money.FromCents(10000), money.FromCents(15000))

	assert.Equal(t, int64(15500), r.Reconciliation.ExpectedBalance.Cents())
	assert.Equal(t, int64(15000), r.Reconciliation.ActualBalance.Cents())
	assert.Equal(t, int64(-500), r.Reconciliation.Discrepancy.Cents())
	assert.Equal(t, model.ReconciliationShortage, r.Reconciliation.Status)

	assert.Equal(t, int64(8000), r.TotalSales.Cents())
	assert.Equal(t, int64(2000), r.TotalSupplies.Cents())
	assert.Equal(t, int64(1500), r.TotalWithdrawals.Cents())
	assert.Equal(t, int64(5000), r.Payments.Money.Cents())
	assert.Equal(t, int64(3000), r.Payments.Pix.Cents())

	assert.Len(t, r.Movements, 6)
	assert.Equal(t, movements[0].Timestamp, r.Date, "report date comes from the opening movement")
}

func TestGenerate_Idempotent(t *testing.T) {
	movements := closedSessionMovements()

	first := Generate(movements, money.FromCents(10000), money.FromCents(15000))
	second := Generate(movements, money.FromCents(10000), money.FromCents(15000))

	var bufA, bufB bytes.Buffer
	require.NoError(t, first.WriteJSON(&bufA))
	require.NoError(t, second.WriteJSON(&bufB))

	assert.Equal(t, bufA.Bytes(), bufB.Bytes(), "unchanged ledger must yield byte-identical reports")
}

func TestGenerate_DoesNotAliasInput(t *testing.T) {
	movements := closedSessionMovements()
	r := Generate(movements, money.FromCents(10000), money.FromCents(15000))

	movements[0].Description = "tampered"
	assert.Equal(t, "drawer opened", r.Movements[0].Description)
}

func TestWriteJSON(t *testing.T) {
	r := Generate(closedSessionMovements(), money.FromCents(10000), money.FromCents(15000))

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	out := buf.String()
	assert.Contains(t, out, `"expectedBalance": "155.00"`)
	assert.Contains(t, out, `"discrepancy": "-5.00"`)
	assert.Contains(t, out, `"status": "shortage"`)
	assert.Contains(t, out, `"paymentMethod": "pix"`)
}

func TestRender(t *testing.T) {
	r := Generate(closedSessionMovements(), money.FromCents(10000), money.FromCents(15000))

	out := r.Render()
	for _, want := range []string{"R$155,00", "R$150,00", "fornecedor", "shortage", "10/03/2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}
