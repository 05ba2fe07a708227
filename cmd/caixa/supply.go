package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/session"
)

func supplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supply <amount> [description...]",
		Short: "Inject cash into the till (suprimento)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSupply,
	}
}

func runSupply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := parseAmount(args[0])
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

	cmdObj := session.SupplyCommand{
		Amount:      amount,
		Description: strings.Join(args[1:], " "),
	}

	credential, err := promptCredential(ctx, cmdObj.Tier())
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}
	cmdObj.Credential = credential

	movement, err := drawer.Supply(cmdObj)
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

	notifier.Success(fmt.Sprintf("Supplied %s, balance is now %s", amount, drawer.Balance()))
	return nil
}
