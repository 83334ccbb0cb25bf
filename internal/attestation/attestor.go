package attestation

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
)

// Attestor produces signed stats updates for verified runs
//
//go:generate mockgen -source=attestor.go -destination=../mocks/attestor.go -package=mocks -mock_names=Attestor=MockAttestor
type Attestor interface {
	// Enabled reports whether signing is configured
	Enabled() bool
	// Attest reconciles the nonce and signs the stats update for input.
	// It must be called while the user's row lock is held so the sequence cannot be consumed twice.
	Attest(ctx context.Context, input Input) (*Result, error)
}

type attestor struct {
	reconciler Reconciler
	signer     Signer
	clock      adapter.Clock
	validity   time.Duration
}

// NewAttestor creates an attestor. validity is the window between signing and the deadline.
func NewAttestor(reconciler Reconciler, signer Signer, clock adapter.Clock, validity time.Duration) Attestor {
	if validity <= 0 {
		validity = domain.ATTESTATION_VALIDITY
	}
	return &attestor{
		reconciler: reconciler,
		signer:     signer,
		clock:      clock,
		validity:   validity,
	}
}

func (a *attestor) Enabled() bool {
	return true
}

func (a *attestor) Attest(ctx context.Context, input Input) (*Result, error) {
	reconciliation := a.reconciler.Reconcile(ctx, input.Sequence)

	now := a.clock.Now()
	deadline := now.Add(a.validity)
	p := input.Progression

	stats := Stats{
		User:                input.WalletAddress,
		XP:                  p.XP,
		Level:               p.Level,
		RunCount:            p.VerifiedRunCount,
		AchievementCount:    input.AchievementCount,
		TotalDistanceMeters: int64(math.Round(p.TotalDistanceMeters)),
		LongestStreakDays:   p.LongestStreakDays,
		LastUpdated:         now.Unix(),
	}
	update := StatsUpdate{
		Stats:    stats,
		Nonce:    big.NewInt(reconciliation.Nonce),
		Deadline: deadline.Unix(),
	}

	signature, err := a.signer.Sign(update)
	if err != nil {
		return nil, fmt.Errorf("failed to sign stats update: %w", err)
	}

	logger.InfoCtx(ctx, "Signed stats update",
		zap.String("wallet_address", input.WalletAddress),
		zap.Int64("nonce", reconciliation.Nonce),
		zap.String("nonce_source", string(reconciliation.Source)),
		zap.Int64("deadline", update.Deadline))

	return &Result{
		Payload: OnchainSync{
			Stats:     stats,
			Nonce:     update.Nonce.String(),
			Deadline:  update.Deadline,
			Signature: signature,
		},
		Reconciliation: reconciliation,
		NextSequence:   reconciliation.Nonce + 1,
		Deadline:       deadline,
		SignedAt:       now,
	}, nil
}

// disabledAttestor is used when signing material is not configured
type disabledAttestor struct{}

// NewDisabledAttestor returns an Attestor that never signs
func NewDisabledAttestor() Attestor {
	return disabledAttestor{}
}

func (disabledAttestor) Enabled() bool {
	return false
}

func (disabledAttestor) Attest(ctx context.Context, input Input) (*Result, error) {
	return nil, domain.ErrSignerNotConfigured
}
