// Package authgate implements the bounded-retry authorization check that
// guards sensitive drawer operations.
package authgate

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rmachado/caixa/internal/common"
	"github.com/rmachado/caixa/internal/model"
)

const (
	// DefaultLockout is the cooldown applied after maxAttempts failures.
	DefaultLockout = 30 * time.Second

	maxAttempts = 3
)

// CredentialVerifier checks a credential against the configured secret.
// The gate depends on this abstraction rather than a literal so secrets
// stay external and per-tier credentials remain possible later.
type CredentialVerifier interface {
	Verify(credential string) bool
}

// State is a snapshot of the gate's attempt counter and lockout deadline,
// used to carry lockout across process invocations.
type State struct {
	LockedUntil    time.Time
	FailedAttempts int
}

// Gate is the authorization state machine: Unlocked with 0..2 failed
// attempts, or Locked until a deadline. Lockout expiry is evaluated lazily
// on each Verify call; nothing blocks and no timers run.
type Gate struct {
	verifier    CredentialVerifier
	now         func() time.Time
	lockedUntil time.Time
	lockout     time.Duration
	mu          sync.Mutex
	failed      int
}

// New creates a gate using the given verifier and lockout duration.
func New(verifier CredentialVerifier, lockout time.Duration) *Gate {
	if lockout <= 0 {
		lockout = DefaultLockout
	}
	return &Gate{
		verifier: verifier,
		lockout:  lockout,
		now:      time.Now,
	}
}

// Verify checks a credential for an action of the given tier. It returns
// nil when authorized, or an *common.AuthError describing the rejection.
// While locked, even the correct credential is rejected: lockout is
// time-gated, not credential-gated.
func (g *Gate) Verify(credential string, tier model.Tier) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	if !g.lockedUntil.IsZero() {
		if now.Before(g.lockedUntil) {
			return &common.AuthError{Kind: common.AuthLocked, Until: g.lockedUntil}
		}
		// Lockout elapsed; reset and evaluate the credential normally.
		g.failed = 0
		g.lockedUntil = time.Time{}
	}

	if g.verifier.Verify(credential) {
		g.failed = 0
		slog.Debug("authorization granted", "tier", tier)
		return nil
	}

	g.failed++
	if g.failed >= maxAttempts {
		g.lockedUntil = now.Add(g.lockout)
		slog.Warn("authorization locked",
			"tier", tier,
			"until", g.lockedUntil.Format(time.RFC3339))
		return &common.AuthError{Kind: common.AuthLocked, Until: g.lockedUntil}
	}

	remaining := maxAttempts - g.failed
	slog.Info("authorization rejected", "tier", tier, "attempts_remaining", remaining)
	return &common.AuthError{Kind: common.AuthRetry, AttemptsRemaining: remaining}
}

// Snapshot returns the current attempt state for persistence.
func (g *Gate) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return State{FailedAttempts: g.failed, LockedUntil: g.lockedUntil}
}

// Restore loads a previously persisted attempt state.
func (g *Gate) Restore(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failed = s.FailedAttempts
	g.lockedUntil = s.LockedUntil
}
