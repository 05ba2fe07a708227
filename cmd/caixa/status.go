package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/cli"
	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/ledger"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and drawer balance",
		Long: `Show the state of the current cash session: expected balance, sales
broken down by payment method and cash handling totals. Status is a
read-only view and needs no credential.`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	sess, err := store.FindOpenSession(ctx)
	if errors.Is(err, common.ErrNotFound) {
		notifier.Info("No open session")
		return nil
	}
	if err != nil {
		return err
	}

	movements, err := store.ListMovements(ctx, sess.ID)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Opened:           %s\n", sess.OpenedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Opening amount:   %s\n", sess.OpeningAmount)
	fmt.Fprintf(&b, "Expected balance: %s\n", ledger.Balance(movements))
	fmt.Fprintf(&b, "Movements:        %d\n", len(movements))

	summary := ledger.Summary(movements)
	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Sales"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cash:             %s\n", summary.Money)
	fmt.Fprintf(&b, "Credit:           %s\n", summary.Credit)
	fmt.Fprintf(&b, "Debit:            %s\n", summary.Debit)
	fmt.Fprintf(&b, "Pix:              %s\n", summary.Pix)
	fmt.Fprintf(&b, "Total:            %s\n", summary.Total())

	fmt.Fprintf(&b, "\nSupplies:         %s\n", ledger.TotalSupplies(movements))
	fmt.Fprintf(&b, "Withdrawals:      %s", ledger.TotalWithdrawals(movements))

	fmt.Println(cli.RenderBox(cli.DrawerIcon+" Open Session", b.String())) //nolint:forbidigo // User-facing output
	return nil
}
