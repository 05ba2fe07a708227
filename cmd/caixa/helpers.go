package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rmachado/caixa/internal/authgate"
	"github.com/rmachado/caixa/internal/cli"
	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
	"github.com/rmachado/caixa/internal/service"
	"github.com/rmachado/caixa/internal/session"
	"github.com/rmachado/caixa/internal/storage"
)

// notifier is the user-facing toast sink for every command.
var notifier service.Notifier = cli.NewToastNotifier(os.Stdout)

// initStorage opens and migrates the register database.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "caixa", "caixa.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func closeStorage(store service.Storage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// loadGate builds the authorization gate from the configured secret and
// the attempt state persisted by previous invocations.
func loadGate(ctx context.Context, store service.Storage) (*authgate.Gate, error) {
	secret := viper.GetString("security.secret")
	if secret == "" {
		return nil, fmt.Errorf("%w: security.secret (set it in the config file or CAIXA_SECURITY_SECRET)", common.ErrMissingConfig)
	}

	gate := authgate.New(authgate.NewSecretVerifier(secret), viper.GetDuration("security.lockout"))

	state, err := store.AuthState(ctx)
	if err != nil {
		return nil, err
	}
	gate.Restore(state)
	return gate, nil
}

// ungatedGate backs flows that never check a credential, such as checkout
// sales; if a gated action were ever wired through it, every attempt would
// be rejected rather than panic.
func ungatedGate() *authgate.Gate {
	return authgate.New(authgate.DenyAllVerifier{}, 0)
}

// persistAuthState saves the gate's attempt state after every verification,
// successful or not, so lockout survives the process.
func persistAuthState(ctx context.Context, store service.Storage, gate *authgate.Gate) {
	if err := store.SaveAuthState(ctx, gate.Snapshot()); err != nil {
		slog.Error("failed to persist auth state", "error", err)
	}
}

// ensureNoOpenSession rejects an open attempt while a session is already
// open, before the operator spends a credential check. The unique index on
// open sessions still backs this at the database level.
func ensureNoOpenSession(ctx context.Context, store service.Storage) error {
	_, err := store.FindOpenSession(ctx)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: a session is already open", common.ErrSessionState)
}

// resumeDrawer rebuilds the drawer around the currently open session.
func resumeDrawer(ctx context.Context, store service.Storage, gate *authgate.Gate) (*session.Drawer, error) {
	sess, err := store.FindOpenSession(ctx)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: no open session", common.ErrSessionState)
	}
	if err != nil {
		return nil, err
	}

	movements, err := store.ListMovements(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	return session.Resume(gate, *sess, movements)
}

// promptCredential shows the tier warning and reads the credential.
// Abandoning the prompt (Ctrl-C) cancels the action without touching the
// gate's attempt state.
func promptCredential(ctx context.Context, tier model.Tier) (string, error) {
	fmt.Println(cli.FormatWarning(tier.Warning())) //nolint:forbidigo // User-facing output
	fmt.Print(cli.FormatPrompt("Credential"))      //nolint:forbidigo // User-facing output

	reader := cli.NewNonBlockingReader(os.Stdin)
	credential, err := reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return credential, nil
}

// parseAmount converts a user-entered decimal string, rejecting garbage
// before it reaches the state machine.
func parseAmount(input string) (money.Amount, error) {
	amount, err := money.Parse(input)
	if err != nil {
		return money.Amount{}, fmt.Errorf("%w: %v", common.ErrInvalidAmount, err)
	}
	return amount, nil
}

// reportRejection surfaces a business rejection as an inline notification
// and reports whether err was one. Infrastructure errors pass through to
// cobra and exit non-zero; rejections leave the session in its last valid
// state and exit clean.
func reportRejection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, cli.ErrInputCancelled) {
		notifier.Info("Action canceled")
		return true
	}
	if common.IsRejection(err) {
		notifier.Error(rejectionMessage(err))
		return true
	}
	return false
}

// rejectionMessage names the specific violated constraint.
func rejectionMessage(err error) string {
	var authErr *common.AuthError
	if errors.As(err, &authErr) {
		if authErr.Kind == common.AuthLocked {
			return fmt.Sprintf("%s Authorization locked until %s", cli.LockIcon, authErr.Until.Format("15:04:05"))
		}
		return fmt.Sprintf("Credential rejected, %d attempt(s) remaining", authErr.AttemptsRemaining)
	}
	return err.Error()
}
