package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/ledger"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
	"github.com/rmachado/caixa/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the report for the latest session",
		Long: `Print the report for the latest session, open or closed. For a closed
session the counted balance comes from its closing movement; for an
open one the expected balance stands in. Regenerating over an unchanged
session yields identical output.`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}
	cmd.Flags().StringP("out", "o", "", "also export the report as JSON to this file")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	sess, err := store.FindLatestSession(ctx)
	if errors.Is(err, common.ErrNotFound) {
		notifier.Info("No sessions recorded yet")
		return nil
	}
	if err != nil {
		return err
	}

	movements, err := store.ListMovements(ctx, sess.ID)
	if err != nil {
		return err
	}

	counted := countedBalance(sess, movements)
	rep := report.Generate(movements, sess.OpeningAmount, counted)

	fmt.Println(rep.Render()) //nolint:forbidigo // User-facing output

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		f, err := os.Create(outPath) //nolint:gosec // User-chosen export path
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				notifier.Warning(fmt.Sprintf("Failed to close report file: %v", err))
			}
		}()
		if err := rep.WriteJSON(f); err != nil {
			return err
		}
		notifier.Success(fmt.Sprintf("Report exported to %s", outPath))
	}
	return nil
}

// countedBalance picks the right physical count for the report: the
// closing movement's amount for a closed session, the expected balance
// for one still open.
func countedBalance(sess *model.CashSession, movements []model.Movement) money.Amount {
	if sess.Status == model.StatusClosed {
		for i := len(movements) - 1; i >= 0; i-- {
			if movements[i].Type == model.MovementClosing {
				return movements[i].Amount
			}
		}
	}
	return ledger.Balance(movements)
}
