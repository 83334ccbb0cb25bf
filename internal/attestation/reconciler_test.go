package attestation_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runera/runera-backend/internal/attestation"
	"github.com/runera/runera-backend/internal/mocks"
)

type testReconcilerMocks struct {
	ctrl     *gomock.Controller
	contract *mocks.MockProfileContract
	clock    *mocks.MockClock
}

func setupTestReconciler(t *testing.T) (*testReconcilerMocks, attestation.Reconciler) {
	ctrl := gomock.NewController(t)
	m := &testReconcilerMocks{
		ctrl:     ctrl,
		contract: mocks.NewMockProfileContract(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	return m, attestation.NewReconciler(m.contract, m.clock, 50*time.Millisecond)
}

func TestReconcile(t *testing.T) {
	now := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)
	future := now.Add(5 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name           string
		local          attestation.LocalSequence
		onchain        int64
		expectClock    bool
		expectedNonce  int64
		expectedSource attestation.NonceSource
	}{
		{
			name:           "on-chain ahead is adopted",
			local:          attestation.LocalSequence{WalletAddress: testUser, Sequence: 5},
			onchain:        7,
			expectedNonce:  7,
			expectedSource: attestation.NonceSourceOnchain,
		},
		{
			name:           "equal values",
			local:          attestation.LocalSequence{WalletAddress: testUser, Sequence: 3},
			onchain:        3,
			expectedNonce:  3,
			expectedSource: attestation.NonceSourceOnchain,
		},
		{
			name:           "outstanding unexpired payloads continue the local sequence",
			local:          attestation.LocalSequence{WalletAddress: testUser, Sequence: 6, LastDeadline: &future},
			onchain:        4,
			expectClock:    true,
			expectedNonce:  6,
			expectedSource: attestation.NonceSourceLocal,
		},
		{
			name:           "expired outstanding payloads rewind to on-chain",
			local:          attestation.LocalSequence{WalletAddress: testUser, Sequence: 6, LastDeadline: &past},
			onchain:        4,
			expectClock:    true,
			expectedNonce:  4,
			expectedSource: attestation.NonceSourceOnchain,
		},
		{
			name:           "behind with no recorded deadline rewinds to on-chain",
			local:          attestation.LocalSequence{WalletAddress: testUser, Sequence: 2},
			onchain:        0,
			expectedNonce:  0,
			expectedSource: attestation.NonceSourceOnchain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, reconciler := setupTestReconciler(t)
			defer m.ctrl.Finish()

			m.contract.EXPECT().
				Nonces(gomock.Any(), testUser).
				Return(big.NewInt(tt.onchain), nil)
			if tt.expectClock {
				m.clock.EXPECT().Now().Return(now)
			}

			result := reconciler.Reconcile(context.Background(), tt.local)
			assert.Equal(t, tt.expectedNonce, result.Nonce)
			assert.Equal(t, tt.expectedSource, result.Source)
			assert.Equal(t, tt.local.Sequence, result.Local)
			require.NotNil(t, result.Onchain)
			assert.Equal(t, tt.onchain, *result.Onchain)
		})
	}
}

func TestReconcile_ReadFailureFallsBackToLocal(t *testing.T) {
	m, reconciler := setupTestReconciler(t)
	defer m.ctrl.Finish()

	m.contract.EXPECT().
		Nonces(gomock.Any(), testUser).
		Return(nil, errors.New("connection refused")).
		Times(1)

	result := reconciler.Reconcile(context.Background(), attestation.LocalSequence{WalletAddress: testUser, Sequence: 5})
	assert.Equal(t, int64(5), result.Nonce)
	assert.Equal(t, attestation.NonceSourceFallback, result.Source)
	assert.Nil(t, result.Onchain)
}

func TestReconcile_ReadIsBounded(t *testing.T) {
	m, reconciler := setupTestReconciler(t)
	defer m.ctrl.Finish()

	m.contract.EXPECT().
		Nonces(gomock.Any(), testUser).
		DoAndReturn(func(ctx context.Context, _ string) (*big.Int, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	start := time.Now()
	result := reconciler.Reconcile(context.Background(), attestation.LocalSequence{WalletAddress: testUser, Sequence: 9})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, int64(9), result.Nonce)
	assert.Equal(t, attestation.NonceSourceFallback, result.Source)
}

func TestReconcile_NilContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := attestation.NewReconciler(nil, mocks.NewMockClock(ctrl), 0)
	result := reconciler.Reconcile(context.Background(), attestation.LocalSequence{WalletAddress: testUser, Sequence: 4})
	assert.Equal(t, int64(4), result.Nonce)
	assert.Equal(t, attestation.NonceSourceFallback, result.Source)
}
