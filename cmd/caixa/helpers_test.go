package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/caixa/internal/common"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCents int64
		wantErr   bool
	}{
		{name: "plain decimal", input: "155.00", wantCents: 15500},
		{name: "comma decimal", input: "155,00", wantCents: 15500},
		{name: "currency prefix", input: "R$ 1.234,56", wantCents: 123456},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, amount.Cents())
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	locked := &common.AuthError{
		Kind:  common.AuthLocked,
		Until: time.Date(2025, 3, 10, 12, 0, 30, 0, time.UTC),
	}
	assert.Contains(t, rejectionMessage(locked), "12:00:30")

	retry := &common.AuthError{Kind: common.AuthRetry, AttemptsRemaining: 2}
	assert.Contains(t, rejectionMessage(retry), "2 attempt(s) remaining")

	plain := errors.New("withdrawal reason is required")
	assert.Equal(t, "withdrawal reason is required", rejectionMessage(plain))
}

func TestReportRejection(t *testing.T) {
	assert.False(t, reportRejection(nil))
	assert.False(t, reportRejection(errors.New("disk on fire")), "infrastructure errors pass through")
	assert.True(t, reportRejection(common.ErrInsufficientBalance))
	assert.True(t, reportRejection(common.ErrSessionState))
	assert.True(t, reportRejection(&common.AuthError{Kind: common.AuthRetry, AttemptsRemaining: 1}))
}
