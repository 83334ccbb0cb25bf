package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/runera/runera-backend/internal/adapter"
)

// profileABI covers the read-only surface of the profile NFT contract used by the backend
const profileABI = `[{"inputs":[{"internalType":"address","name":"user","type":"address"}],"name":"nonces","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

// ProfileContract reads state from the on-chain profile contract
//
//go:generate mockgen -source=profile.go -destination=../../mocks/profile_contract.go -package=mocks -mock_names=ProfileContract=MockProfileContract
type ProfileContract interface {
	// Nonces returns the attestation sequence the contract expects next for a user
	Nonces(ctx context.Context, userAddress string) (*big.Int, error)

	// Close closes the underlying connection
	Close()
}

type profileContract struct {
	client  adapter.EthClient
	address common.Address
	abi     abi.ABI
}

// NewProfileContract creates a reader for the profile contract deployed at contractAddress
func NewProfileContract(client adapter.EthClient, contractAddress string) (ProfileContract, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid profile contract address: %s", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(profileABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &profileContract{
		client:  client,
		address: common.HexToAddress(contractAddress),
		abi:     parsed,
	}, nil
}

// Nonces calls nonces(address) on the profile contract at the latest block
func (c *profileContract) Nonces(ctx context.Context, userAddress string) (*big.Int, error) {
	if !common.IsHexAddress(userAddress) {
		return nil, fmt.Errorf("invalid user address: %s", userAddress)
	}

	data, err := c.abi.Pack("nonces", common.HexToAddress(userAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var nonce *big.Int
	if err := c.abi.UnpackIntoInterface(&nonce, "nonces", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return nonce, nil
}

// Close closes the underlying connection
func (c *profileContract) Close() {
	c.client.Close()
}
