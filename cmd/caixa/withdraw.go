package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/session"
)

func withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Remove cash from the till (sangria)",
		Long: `Withdraw cash from the drawer. A reason is mandatory and the amount
may not exceed the current balance. Withdrawal requires the high-tier
credential.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithdraw,
	}
	cmd.Flags().StringP("reason", "r", "", "reason for the withdrawal (required)")
	return cmd
}

func runWithdraw(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := parseAmount(args[0])
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}
	reason, _ := cmd.Flags().GetString("reason")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	gate, err := loadGate(ctx, store)
	if err != nil {
		return err
	}

	drawer, err := resumeDrawer(ctx, store, gate)
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	cmdObj := session.WithdrawCommand{Amount: amount, Reason: reason}

	credential, err := promptCredential(ctx, cmdObj.Tier())
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}
	cmdObj.Credential = credential

	movement, err := drawer.Withdraw(cmdObj)
	persistAuthState(ctx, store, gate)
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	if err := store.AppendMovement(ctx, drawer.Session().ID, *movement); err != nil {
		return fmt.Errorf("failed to persist movement: %w", err)
	}

	notifier.Success(fmt.Sprintf("Withdrew %s, balance is now %s", amount, drawer.Balance()))
	return nil
}
