package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/session"
)

func saleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale <amount> [description...]",
		Short: "Record a completed sale from checkout",
		Long: `Record a completed sale in the session ledger. Sales arrive from the
checkout and are not a gated action; only cash ("money") sales affect
the drawer balance, but every sale counts toward the daily gross.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSale,
	}
	cmd.Flags().StringP("method", "m", "", "payment method: money, credit, debit or pix (required)")
	return cmd
}

func runSale(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := parseAmount(args[0])
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	methodFlag, _ := cmd.Flags().GetString("method")
	method, err := model.ParsePaymentMethod(methodFlag)
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	// Sales are not a gated action; no credential config is needed.
	drawer, err := resumeDrawer(ctx, store, ungatedGate())
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	movement, err := drawer.RecordSale(session.SaleEvent{
		Amount:      amount,
		Method:      method,
		Description: strings.Join(args[1:], " "),
	})
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	if err := store.AppendMovement(ctx, drawer.Session().ID, *movement); err != nil {
		return fmt.Errorf("failed to persist movement: %w", err)
	}

	notifier.Success(fmt.Sprintf("Sale of %s (%s) recorded", amount, method))
	return nil
}
