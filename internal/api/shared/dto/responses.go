package dto

import (
	"encoding/json"
	"time"

	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/events"
)

// UserResponse represents a user's progression snapshot
type UserResponse struct {
	ID                  string  `json:"id"`
	WalletAddress       string  `json:"walletAddress"`
	Tier                int     `json:"tier"`
	Level               int     `json:"level"`
	Exp                 int64   `json:"exp"`
	TotalDistanceMeters float64 `json:"totalDistanceMeters"`
	RunCount            int     `json:"runCount"`
	VerifiedRunCount    int     `json:"verifiedRunCount"`
	LongestStreakDays   int     `json:"longestStreakDays"`
}

// ConnectResponse represents a successful wallet login
type ConnectResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AttestationResponse describes the attestation counter of a user
type AttestationResponse struct {
	Sequence   int64      `json:"sequence"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
}

// ProfileResponse represents the public profile of a wallet
type ProfileResponse struct {
	UserResponse
	AchievementCount int64               `json:"achievementCount"`
	Attestation      AttestationResponse `json:"attestation"`
}

// RunStatusHistoryResponse is one entry of a run's audit trail
type RunStatusHistoryResponse struct {
	Status     domain.RunStatus   `json:"status"`
	ReasonCode *domain.ReasonCode `json:"reasonCode,omitempty"`
	Meta       json.RawMessage    `json:"meta,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// RunResponse represents a run with its audit trail
type RunResponse struct {
	ID               string                     `json:"id"`
	UserID           string                     `json:"userId"`
	Status           domain.RunStatus           `json:"status"`
	DistanceMeters   float64                    `json:"distanceMeters"`
	DurationSeconds  float64                    `json:"durationSeconds"`
	StartTime        time.Time                  `json:"startTime"`
	EndTime          time.Time                  `json:"endTime"`
	AvgPaceSeconds   int64                      `json:"avgPaceSeconds"`
	ReasonCode       *domain.ReasonCode         `json:"reasonCode"`
	ValidatorVersion *string                    `json:"validatorVersion,omitempty"`
	SubmittedAt      time.Time                  `json:"submittedAt"`
	ValidatedAt      *time.Time                 `json:"validatedAt,omitempty"`
	VerifiedAt       *time.Time                 `json:"verifiedAt,omitempty"`
	RejectedAt       *time.Time                 `json:"rejectedAt,omitempty"`
	History          []RunStatusHistoryResponse `json:"history"`
}

// EventResponse represents an event
type EventResponse struct {
	EventID                string    `json:"eventId"`
	Name                   string    `json:"name"`
	Slug                   string    `json:"slug"`
	MinTier                int       `json:"minTier"`
	MinTotalDistanceMeters float64   `json:"minTotalDistanceMeters"`
	TargetDistanceMeters   float64   `json:"targetDistanceMeters"`
	ExpReward              int64     `json:"expReward"`
	StartTime              time.Time `json:"startTime"`
	EndTime                time.Time `json:"endTime"`
	Active                 bool      `json:"active"`
}

// EventListResponse represents the active events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EligibilityResponse represents the join rules evaluated for a wallet
type EligibilityResponse struct {
	Event EventResponse `json:"event"`
	events.Eligibility
}

// ParticipationResponse represents a user's participation in an event
type ParticipationResponse struct {
	EventID        string                     `json:"eventId"`
	Status         domain.ParticipationStatus `json:"status"`
	JoinedAt       time.Time                  `json:"joinedAt"`
	CompletedRunID *string                    `json:"completedRunId,omitempty"`
	CompletedAt    *time.Time                 `json:"completedAt,omitempty"`
}
