package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/caixa/internal/authgate"
	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/model"
	"github.com/rmachado/caixa/internal/money"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "caixa.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testSession(openedAt time.Time) *model.CashSession {
	return &model.CashSession{
		ID:            "sess-1",
		Status:        model.StatusOpen,
		OpeningAmount: money.FromCents(10000),
		OpenedAt:      openedAt,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	// A second run must be a no-op, not a failure.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	openedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	_, err := store.FindOpenSession(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	sess := testSession(openedAt)
	opening := model.NewMovement(model.MovementOpening, money.FromCents(10000), "drawer opened", openedAt)
	require.NoError(t, store.CreateSession(ctx, sess, opening))

	found, err := store.FindOpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)
	assert.Equal(t, model.StatusOpen, found.Status)
	assert.Equal(t, int64(10000), found.OpeningAmount.Cents())
	assert.Nil(t, found.ClosedAt)

	closedAt := openedAt.Add(10 * time.Hour)
	closing := model.NewMovement(model.MovementClosing, money.FromCents(15000), "drawer closed", closedAt)
	require.NoError(t, store.CloseSession(ctx, sess.ID, closedAt, closing))

	_, err = store.FindOpenSession(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	latest, err := store.FindLatestSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusClosed, latest.Status)
	require.NotNil(t, latest.ClosedAt)

	movements, err := store.ListMovements(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, model.MovementClosing, movements[1].Type)
}

func TestCreateSession_SecondOpenRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	openedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	opening := model.NewMovement(model.MovementOpening, money.FromCents(10000), "", openedAt)
	require.NoError(t, store.CreateSession(ctx, testSession(openedAt), opening))

	second := testSession(openedAt.Add(time.Hour))
	second.ID = "sess-2"
	secondOpening := model.NewMovement(model.MovementOpening, money.FromCents(5000), "", openedAt.Add(time.Hour))
	err := store.CreateSession(ctx, second, secondOpening)
	assert.Error(t, err, "unique open-session index must reject a second open session")
}

func TestCloseSession_NoOpenSession(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	closing := model.NewMovement(model.MovementClosing, money.Zero, "", time.Now())
	err := store.CloseSession(ctx, "missing", time.Now(), closing)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAppendAndListMovements(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	openedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	sess := testSession(openedAt)
	opening := model.NewMovement(model.MovementOpening, money.FromCents(10000), "drawer opened", openedAt)
	require.NoError(t, store.CreateSession(ctx, sess, opening))

	sale := model.NewSale(money.FromCents(5000), model.PaymentMoney, "service order 17", openedAt.Add(time.Minute))
	require.NoError(t, store.AppendMovement(ctx, sess.ID, sale))

	supply := model.NewMovement(model.MovementSupply, money.FromCents(2000), "change", openedAt.Add(2*time.Minute))
	require.NoError(t, store.AppendMovement(ctx, sess.ID, supply))

	movements, err := store.ListMovements(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, movements, 3)

	assert.Equal(t, model.MovementOpening, movements[0].Type)
	assert.Equal(t, model.PaymentMoney, movements[1].PaymentMethod)
	assert.Equal(t, model.PaymentMethod(""), movements[2].PaymentMethod)
	assert.Equal(t, int64(5000), movements[1].Amount.Cents())
	assert.True(t, movements[1].Timestamp.Equal(openedAt.Add(time.Minute)))
}

func TestAppendMovement_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	openedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	sess := testSession(openedAt)
	opening := model.NewMovement(model.MovementOpening, money.FromCents(10000), "", openedAt)
	require.NoError(t, store.CreateSession(ctx, sess, opening))

	bad := model.NewMovement(model.MovementSale, money.FromCents(100), "no method", openedAt.Add(time.Minute))
	err := store.AppendMovement(ctx, sess.ID, bad)
	assert.ErrorIs(t, err, common.ErrInvalidMovement)

	movements, err := store.ListMovements(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}

func TestAuthStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	state, err := store.AuthState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.FailedAttempts)
	assert.True(t, state.LockedUntil.IsZero())

	lockedUntil := time.Date(2025, 3, 10, 12, 0, 30, 0, time.UTC)
	require.NoError(t, store.SaveAuthState(ctx, authgate.State{
		FailedAttempts: 3,
		LockedUntil:    lockedUntil,
	}))

	state, err = store.AuthState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.FailedAttempts)
	assert.True(t, state.LockedUntil.Equal(lockedUntil))

	// Clearing the lockout persists a zero deadline as NULL.
	require.NoError(t, store.SaveAuthState(ctx, authgate.State{}))
	state, err = store.AuthState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.FailedAttempts)
	assert.True(t, state.LockedUntil.IsZero())
}
