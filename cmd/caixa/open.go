package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/session"
)

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <amount>",
		Short: "Open the drawer with an opening amount",
		Long: `Open a new cash session. The opening amount is the cash physically
placed in the drawer; it becomes the first ledger movement. Opening
requires the high-tier credential.`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
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

	if err := ensureNoOpenSession(ctx, store); err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	gate, err := loadGate(ctx, store)
	if err != nil {
		return err
	}

	drawer := session.NewDrawer(gate)
	cmdObj := session.OpenCommand{Amount: amount}

	credential, err := promptCredential(ctx, cmdObj.Tier())
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}
	cmdObj.Credential = credential

	movement, err := drawer.Open(cmdObj)
	persistAuthState(ctx, store, gate)
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	if err := store.CreateSession(ctx, drawer.Session(), *movement); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	notifier.Success(fmt.Sprintf("Session opened with %s", amount))
	return nil
}
