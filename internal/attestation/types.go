package attestation

import (
	"math/big"
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

// Stats is the progression snapshot bound into a signed stats update
type Stats struct {
	User                string `json:"user"`
	XP                  int64  `json:"xp"`
	Level               int    `json:"level"`
	RunCount            int    `json:"runCount"`
	AchievementCount    int64  `json:"achievementCount"`
	TotalDistanceMeters int64  `json:"totalDistanceMeters"`
	LongestStreakDays   int    `json:"longestStreakDays"`
	LastUpdated         int64  `json:"lastUpdated"`
}

// StatsUpdate is the exact tuple covered by the signature
type StatsUpdate struct {
	Stats
	Nonce    *big.Int
	Deadline int64
}

// OnchainSync is the payload returned to the client for submission to the profile contract
type OnchainSync struct {
	Stats     Stats  `json:"stats"`
	Nonce     string `json:"nonce"`
	Deadline  int64  `json:"deadline"`
	Signature string `json:"signature"`
}

// NonceSource records which counter the signed nonce was taken from
type NonceSource string

const (
	// NonceSourceOnchain means the on-chain counter was read and adopted
	NonceSourceOnchain NonceSource = "onchain"
	// NonceSourceLocal means the local sequence was kept because signed payloads are still outstanding
	NonceSourceLocal NonceSource = "local"
	// NonceSourceFallback means the on-chain read failed and the local sequence was used
	NonceSourceFallback NonceSource = "local_fallback"
)

// LocalSequence is the attestation state stored on the user row
type LocalSequence struct {
	WalletAddress string
	Sequence      int64
	// LastDeadline is the deadline of the most recently signed payload, nil if none was ever signed
	LastDeadline *time.Time
}

// Reconciliation is the outcome of resolving the local sequence against the on-chain counter
type Reconciliation struct {
	// Nonce is the value to sign
	Nonce  int64
	Source NonceSource
	// Onchain is the value read from the contract, nil when the read failed
	Onchain *int64
	Local   int64
}

// Input is everything needed to produce one attestation for a user
type Input struct {
	WalletAddress    string
	Progression      domain.Progression
	AchievementCount int64
	Sequence         LocalSequence
}

// Result is a produced attestation and the sequence state to persist with it
type Result struct {
	Payload        OnchainSync
	Reconciliation Reconciliation
	// NextSequence is the local sequence after consuming Reconciliation.Nonce
	NextSequence int64
	Deadline     time.Time
	SignedAt     time.Time
}
