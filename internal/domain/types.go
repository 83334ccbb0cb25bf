package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	walletAddressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	eventIDRegex       = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

// IsValidWalletAddress reports whether the address is a 0x-prefixed 20-byte hex string
func IsValidWalletAddress(address string) bool {
	return walletAddressRegex.MatchString(address)
}

// NormalizeWalletAddress trims and lowercases a wallet address after validating it
func NormalizeWalletAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !IsValidWalletAddress(address) {
		return "", ErrInvalidWalletAddress
	}
	return strings.ToLower(address), nil
}

// IsValidEventID reports whether the id is a 0x-prefixed 32-byte hex string
func IsValidEventID(eventID string) bool {
	return eventIDRegex.MatchString(eventID)
}

// RunStatus is the lifecycle state of a submitted run
type RunStatus string

const (
	RunStatusSubmitted  RunStatus = "SUBMITTED"
	RunStatusValidating RunStatus = "VALIDATING"
	RunStatusVerified   RunStatus = "VERIFIED"
	RunStatusRejected   RunStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusVerified || s == RunStatusRejected
}

// CanTransitionTo reports whether next directly follows s in the run state machine
func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	switch s {
	case RunStatusSubmitted:
		return next == RunStatusValidating
	case RunStatusValidating:
		return next == RunStatusVerified || next == RunStatusRejected
	default:
		return false
	}
}

// ReasonCode explains why a run was rejected
type ReasonCode string

const (
	ReasonNoDeviceAttestation ReasonCode = "ERR_NO_DEVICE_ATTESTATION"
	ReasonTimestampInvalid    ReasonCode = "ERR_TIMESTAMP_INVALID"
	ReasonDistanceShort       ReasonCode = "ERR_DISTANCE_SHORT"
	ReasonDurationShort       ReasonCode = "ERR_DURATION_SHORT"
	ReasonPaceImpossible      ReasonCode = "ERR_PACE_IMPOSSIBLE"
)

// Verdict is the outcome of rule validation. ReasonCode is nil unless Status is REJECTED.
type Verdict struct {
	Status     RunStatus
	ReasonCode *ReasonCode
}

// Verified reports whether the verdict accepts the run
func (v Verdict) Verified() bool {
	return v.Status == RunStatusVerified
}

// RunMeasurements are the inputs of the anti-cheat rules
type RunMeasurements struct {
	DistanceMeters  float64
	DurationSeconds float64
	StartTime       time.Time
	EndTime         time.Time
	DeviceHash      string
}

// Tier is the coarse progression bracket derived from level
type Tier int

// Progression is a user's derived experience state
type Progression struct {
	XP                  int64
	Level               int
	Tier                Tier
	RunCount            int
	VerifiedRunCount    int
	TotalDistanceMeters float64
	LongestStreakDays   int
}

// ParticipationStatus is the lifecycle state of an event participation
type ParticipationStatus string

const (
	ParticipationStatusJoined     ParticipationStatus = "JOINED"
	ParticipationStatusInProgress ParticipationStatus = "IN_PROGRESS"
	ParticipationStatusCompleted  ParticipationStatus = "COMPLETED"
)

// IsCompleted reports whether the participation reached its terminal state
func (s ParticipationStatus) IsCompleted() bool {
	return s == ParticipationStatusCompleted
}

// RunVerifiedEvent is published after a verified run has been committed
type RunVerifiedEvent struct {
	EventID        string    `json:"event_id"`
	RunID          string    `json:"run_id"`
	UserID         string    `json:"user_id"`
	WalletAddress  string    `json:"wallet_address"`
	DistanceMeters float64   `json:"distance_meters"`
	EndTime        time.Time `json:"end_time"`
	VerifiedAt     time.Time `json:"verified_at"`
}

// ValidationError carries every problem found in a malformed payload
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Problems, "; ")
}
