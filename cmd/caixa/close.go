package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/session"
)

func closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <counted-balance>",
		Short: "Close the session against a physical count",
		Long: `Close the open session. The counted balance is the cash physically
counted in the drawer; it is reconciled against the ledger-expected
balance and the session report is printed. Closing requires the
high-tier credential and freezes the ledger.`,
		Args: cobra.ExactArgs(1),
		RunE: runClose,
	}
}

func runClose(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	counted, err := parseAmount(args[0])
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

	cmdObj := session.CloseCommand{CountedBalance: counted}
	credential, err := promptCredential(ctx, cmdObj.Tier())
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}
	cmdObj.Credential = credential

	rep, err := drawer.Close(cmdObj)
	persistAuthState(ctx, store, gate)
	if err != nil {
		if reportRejection(err) {
			return nil
		}
		return err
	}

	sess := drawer.Session()
	movements := drawer.Movements()
	closing := movements[len(movements)-1]
	if err := store.CloseSession(ctx, sess.ID, *sess.ClosedAt, closing); err != nil {
		return fmt.Errorf("failed to persist session close: %w", err)
	}

	fmt.Println(rep.Render()) //nolint:forbidigo // User-facing output

	switch rep.Reconciliation.Status {
	case model.ReconciliationMatch:
		notifier.Success("Session closed, drawer matches the ledger")
	case model.ReconciliationSurplus:
		notifier.Warning(fmt.Sprintf("Session closed with a surplus of %s", rep.Reconciliation.Discrepancy))
	case model.ReconciliationShortage:
		notifier.Warning(fmt.Sprintf("Session closed with a shortage of %s", rep.Reconciliation.Discrepancy.Neg()))
	}
	return nil
}
