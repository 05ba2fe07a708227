package model

import (
	"errors"
	"testing"
	"time"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/money"
)

func TestMovement_Validate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		movement Movement
		wantErr  bool
	}{
		{
			name:     "valid opening",
			movement: NewMovement(MovementOpening, money.FromCents(10000), "drawer opened", now),
		},
		{
			name:     "valid sale with method",
			movement: NewSale(money.FromCents(5000), PaymentMoney, "service order 42", now),
		},
		{
			name:     "valid zero-amount opening",
			movement: NewMovement(MovementOpening, money.Zero, "drawer opened", now),
		},
		{
			name:     "negative amount",
			movement: NewMovement(MovementSupply, money.FromCents(-100), "", now),
			wantErr:  true,
		},
		{
			name:     "sale without payment method",
			movement: NewMovement(MovementSale, money.FromCents(5000), "service order 42", now),
			wantErr:  true,
		},
		{
			name: "payment method on non-sale",
			movement: func() Movement {
				m := NewMovement(MovementWithdraw, money.FromCents(100), "change", now)
				m.PaymentMethod = PaymentPix
				return m
			}(),
			wantErr: true,
		},
		{
			name:     "unknown type",
			movement: Movement{ID: "x", Type: "refund", Amount: money.FromCents(100), Timestamp: now},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.movement.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, common.ErrInvalidMovement) {
					t.Errorf("error %v should wrap ErrInvalidMovement", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"money", "credit", "debit", "pix"} {
		if _, err := ParsePaymentMethod(valid); err != nil {
			t.Errorf("ParsePaymentMethod(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "cash", "MONEY", "boleto"} {
		if _, err := ParsePaymentMethod(invalid); err == nil {
			t.Errorf("ParsePaymentMethod(%q) expected error", invalid)
		}
	}
}

func TestNewMovement_AssignsID(t *testing.T) {
	a := NewMovement(MovementSupply, money.FromCents(2000), "", time.Now())
	b := NewMovement(MovementSupply, money.FromCents(2000), "", time.Now())
	if a.ID == "" || b.ID == "" {
		t.Fatal("movements must have IDs")
	}
	if a.ID == b.ID {
		t.Error("movement IDs must be unique")
	}
}
