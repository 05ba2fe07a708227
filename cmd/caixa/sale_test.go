package main

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/caixa/internal/model"
)

func TestRunSale_NeedsNoCredentialConfig(t *testing.T) {
	ctx := context.Background()
	store, dbPath := newTestStore(t)
	sess := seedOpenSession(t, store)

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("database.path", dbPath)
	// security.secret deliberately left unset: sales are not gated.

	cmd := saleCmd()
	cmd.SetContext(ctx)
	require.NoError(t, cmd.Flags().Set("method", "pix"))
	require.NoError(t, runSale(cmd, []string{"30,00", "service", "order", "18"}))

	movements, err := store.ListMovements(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, model.MovementSale, movements[1].Type)
	assert.Equal(t, model.PaymentPix, movements[1].PaymentMethod)
	assert.Equal(t, int64(3000), movements[1].Amount.Cents())
	assert.Equal(t, "service order 18", movements[1].Description)
}
