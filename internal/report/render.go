package report

import (
	"fmt"
	"strings"

	"github.com/rmachado/caixa/internal/cli"
	"github.com/rmachado/caixa/internal/model"
)

// Render produces the printable view of the report. It uses the same
// currency formatting as the live drawer display.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("%s Cash Session Report %s", cli.ReceiptIcon, r.Date.Format("02/01/2006"))))
	b.WriteString("\n\n")

	b.WriteString(cli.BoldStyle.Render("Balances"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Opening:          %s\n", r.OpeningAmount)
	fmt.Fprintf(&b, "  Expected:         %s\n", r.Reconciliation.ExpectedBalance)
	fmt.Fprintf(&b, "  Counted:          %s\n", r.CountedBalance)
	fmt.Fprintf(&b, "  Discrepancy:      %s %s\n", r.Reconciliation.Discrepancy, renderStatus(r.Reconciliation.Status))

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Sales by payment method"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Cash:             %s\n", r.Payments.Money)
	fmt.Fprintf(&b, "  Credit:           %s\n", r.Payments.Credit)
	fmt.Fprintf(&b, "  Debit:            %s\n", r.Payments.Debit)
	fmt.Fprintf(&b, "  Pix:              %s\n", r.Payments.Pix)
	fmt.Fprintf(&b, "  Total sales:      %s\n", r.TotalSales)

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Cash handling"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Supplies:         %s\n", r.TotalSupplies)
	fmt.Fprintf(&b, "  Withdrawals:      %s\n", r.TotalWithdrawals)

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Movements"))
	b.WriteString("\n")
	for _, m := range r.Movements {
		line := fmt.Sprintf("  %s  %-8s  %10s  %s",
			m.Timestamp.Format("15:04"), m.Type, m.Amount, m.Description)
		if m.Type == model.MovementSale {
			line += fmt.Sprintf(" (%s)", m.PaymentMethod)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func renderStatus(status model.ReconciliationStatus) string {
	switch status {
	case model.ReconciliationMatch:
		return cli.SuccessStyle.Render("(match)")
	case model.ReconciliationSurplus:
		return cli.WarningStyle.Render("(surplus)")
	case model.ReconciliationShortage:
		return cli.ErrorStyle.Render("(shortage)")
	}
	return ""
}
