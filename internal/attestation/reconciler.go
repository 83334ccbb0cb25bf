package attestation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/providers/ethereum"
)

// DefaultNonceReadTimeout bounds the single on-chain read made per attestation
const DefaultNonceReadTimeout = 3 * time.Second

// Reconciler resolves the nonce to sign from the local sequence and the on-chain counter
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	Reconcile(ctx context.Context, local LocalSequence) Reconciliation
}

type reconciler struct {
	contract ethereum.ProfileContract
	clock    adapter.Clock
	timeout  time.Duration
}

// NewReconciler creates a reconciler reading nonces from the profile contract.
// A nil contract always resolves to the local sequence. A non-positive timeout falls back to DefaultNonceReadTimeout.
func NewReconciler(contract ethereum.ProfileContract, clock adapter.Clock, timeout time.Duration) Reconciler {
	if timeout <= 0 {
		timeout = DefaultNonceReadTimeout
	}
	return &reconciler{
		contract: contract,
		clock:    clock,
		timeout:  timeout,
	}
}

// Reconcile makes exactly one bounded on-chain read and never fails.
//
//   - read fails: sign the local sequence
//   - on-chain >= local: sign the on-chain value
//   - on-chain < local: payloads signed for [on-chain, local) have not been submitted yet.
//     While the newest of them is unexpired the local sequence continues, so no live
//     signature shares a nonce. Once it has expired all of them are dead and the
//     sequence rewinds to the on-chain value.
func (r *reconciler) Reconcile(ctx context.Context, local LocalSequence) Reconciliation {
	result := Reconciliation{
		Nonce:  local.Sequence,
		Source: NonceSourceFallback,
		Local:  local.Sequence,
	}

	if r.contract == nil {
		return result
	}

	readCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	onchainNonce, err := r.contract.Nonces(readCtx, local.WalletAddress)
	if err != nil {
		logger.WarnCtx(ctx, "On-chain nonce read failed, using local attestation sequence",
			zap.Error(err),
			zap.String("wallet_address", local.WalletAddress),
			zap.Int64("local_sequence", local.Sequence))
		return result
	}
	if !onchainNonce.IsInt64() {
		logger.WarnCtx(ctx, "On-chain nonce out of range, using local attestation sequence",
			zap.String("wallet_address", local.WalletAddress),
			zap.String("onchain_nonce", onchainNonce.String()))
		return result
	}

	onchain := onchainNonce.Int64()
	result.Onchain = &onchain

	switch {
	case onchain == local.Sequence:
		result.Nonce = onchain
		result.Source = NonceSourceOnchain

	case onchain > local.Sequence:
		logger.WarnCtx(ctx, "On-chain nonce ahead of local attestation sequence, adopting on-chain value",
			zap.String("wallet_address", local.WalletAddress),
			zap.Int64("local_sequence", local.Sequence),
			zap.Int64("onchain_nonce", onchain))
		result.Nonce = onchain
		result.Source = NonceSourceOnchain

	case local.LastDeadline != nil && r.clock.Now().Before(*local.LastDeadline):
		logger.WarnCtx(ctx, "Signed stats updates still outstanding, continuing local attestation sequence",
			zap.String("wallet_address", local.WalletAddress),
			zap.Int64("local_sequence", local.Sequence),
			zap.Int64("onchain_nonce", onchain),
			zap.Time("outstanding_deadline", *local.LastDeadline))
		result.Nonce = local.Sequence
		result.Source = NonceSourceLocal

	default:
		logger.WarnCtx(ctx, "Outstanding stats updates expired, rewinding to on-chain nonce",
			zap.String("wallet_address", local.WalletAddress),
			zap.Int64("local_sequence", local.Sequence),
			zap.Int64("onchain_nonce", onchain))
		result.Nonce = onchain
		result.Source = NonceSourceOnchain
	}

	return result
}
