package attestation

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/runera/runera-backend/internal/domain"
)

const (
	// DomainName is the EIP-712 domain name of the profile contract
	DomainName = "RuneraProfileDynamicNFT"
	// DomainVersion is the EIP-712 domain version of the profile contract
	DomainVersion = "1"

	statsUpdateType = "StatsUpdate"
)

var typedDataTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	statsUpdateType: {
		{Name: "user", Type: "address"},
		{Name: "xp", Type: "uint96"},
		{Name: "level", Type: "uint16"},
		{Name: "runCount", Type: "uint32"},
		{Name: "achievementCount", Type: "uint32"},
		{Name: "totalDistanceMeters", Type: "uint64"},
		{Name: "longestStreakDays", Type: "uint32"},
		{Name: "lastUpdated", Type: "uint64"},
		{Name: "nonce", Type: "uint256"},
		{Name: "deadline", Type: "uint256"},
	},
}

// SignerConfig holds the externally configured signing material.
// All three fields are required; Configured reports whether they are present.
type SignerConfig struct {
	PrivateKey      string
	ContractAddress string
	ChainID         int64
}

// Configured reports whether every field needed to sign is present
func (c SignerConfig) Configured() bool {
	return c.PrivateKey != "" && c.ContractAddress != "" && c.ChainID != 0
}

// Signer produces EIP-712 signatures over stats updates
//
//go:generate mockgen -source=signer.go -destination=../mocks/attestation_signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the address of the signing key
	Address() common.Address
	// Hash returns the EIP-712 digest of an update under the configured domain
	Hash(update StatsUpdate) ([]byte, error)
	// Sign returns the 65-byte hex signature of an update with V in {27, 28}
	Sign(update StatsUpdate) (string, error)
}

type eip712Signer struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	chainID  *big.Int
	contract common.Address
}

// NewSigner creates a signer bound to {DomainName, DomainVersion, chain id, contract address}
func NewSigner(cfg SignerConfig) (Signer, error) {
	if !cfg.Configured() {
		return nil, domain.ErrSignerNotConfigured
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse signer private key: %w", err)
	}

	return &eip712Signer{
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		chainID:  big.NewInt(cfg.ChainID),
		contract: common.HexToAddress(cfg.ContractAddress),
	}, nil
}

func (s *eip712Signer) Address() common.Address {
	return s.address
}

func (s *eip712Signer) typedData(update StatsUpdate) (apitypes.TypedData, error) {
	if !common.IsHexAddress(update.User) {
		return apitypes.TypedData{}, fmt.Errorf("invalid user address: %s", update.User)
	}
	if update.Nonce == nil || update.Nonce.Sign() < 0 {
		return apitypes.TypedData{}, fmt.Errorf("invalid nonce")
	}

	return apitypes.TypedData{
		Types:       typedDataTypes,
		PrimaryType: statsUpdateType,
		Domain: apitypes.TypedDataDomain{
			Name:              DomainName,
			Version:           DomainVersion,
			ChainId:           math.NewHexOrDecimal256(s.chainID.Int64()),
			VerifyingContract: s.contract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"user":                common.HexToAddress(update.User).Hex(),
			"xp":                  strconv.FormatInt(update.XP, 10),
			"level":               strconv.Itoa(update.Level),
			"runCount":            strconv.Itoa(update.RunCount),
			"achievementCount":    strconv.FormatInt(update.AchievementCount, 10),
			"totalDistanceMeters": strconv.FormatInt(update.TotalDistanceMeters, 10),
			"longestStreakDays":   strconv.Itoa(update.LongestStreakDays),
			"lastUpdated":         strconv.FormatInt(update.LastUpdated, 10),
			"nonce":               update.Nonce.String(),
			"deadline":            strconv.FormatInt(update.Deadline, 10),
		},
	}, nil
}

func (s *eip712Signer) Hash(update StatsUpdate) ([]byte, error) {
	typedData, err := s.typedData(update)
	if err != nil {
		return nil, err
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return hash, nil
}

func (s *eip712Signer) Sign(update StatsUpdate) (string, error) {
	hash, err := s.Hash(update)
	if err != nil {
		return "", err
	}

	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign stats update: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return hexutil.Encode(sig), nil
}

// RecoverSigner returns the address that produced signature over hash.
// Signatures with V in {0, 1} and {27, 28} are both accepted.
func RecoverSigner(hash []byte, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: %d", len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
