package attestation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/providers/ethereum"
)

// Config holds everything needed to build an Attestor
type Config struct {
	Signer           SignerConfig
	RPCURL           string
	NonceReadTimeout time.Duration
	Validity         time.Duration
}

// New builds an Attestor from configuration. Missing signing material yields a disabled attestor,
// never an error. The returned close function releases the RPC connection.
func New(ctx context.Context, cfg Config, dialer adapter.EthClientDialer, clock adapter.Clock) (Attestor, func(), error) {
	noop := func() {}

	signer, err := NewSigner(cfg.Signer)
	if err != nil {
		if errors.Is(err, domain.ErrSignerNotConfigured) {
			logger.WarnCtx(ctx, "Attestation signer not configured, stats updates will not be signed")
			return NewDisabledAttestor(), noop, nil
		}
		return nil, noop, err
	}

	var contract ethereum.ProfileContract
	closeFn := noop
	if cfg.RPCURL != "" {
		client, err := dialer.Dial(ctx, cfg.RPCURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to dial ethereum rpc: %w", err)
		}
		contract, err = ethereum.NewProfileContract(client, cfg.Signer.ContractAddress)
		if err != nil {
			client.Close()
			return nil, noop, err
		}
		closeFn = contract.Close
	} else {
		logger.WarnCtx(ctx, "Ethereum RPC URL not configured, attestations will use the local sequence only")
	}

	logger.InfoCtx(ctx, "Attestation enabled",
		zap.String("signer", signer.Address().Hex()),
		zap.String("contract", cfg.Signer.ContractAddress),
		zap.Int64("chain_id", cfg.Signer.ChainID))

	reconciler := NewReconciler(contract, clock, cfg.NonceReadTimeout)
	return NewAttestor(reconciler, signer, clock, cfg.Validity), closeFn, nil
}
