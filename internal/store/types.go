package store

import (
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

// UpdateUserProgressionInput represents the data written to a user after a verified run
type UpdateUserProgressionInput struct {
	UserID              string
	Progression         domain.Progression
	AttestationSequence int64
	AttestationDeadline *time.Time
	LastSyncAt          *time.Time
}

// CreateRunInput represents the data needed to create a run
type CreateRunInput struct {
	UserID          string
	DistanceMeters  float64
	DurationSeconds float64
	StartTime       time.Time
	EndTime         time.Time
	DeviceHash      *string
	AvgPaceSeconds  int64
	SubmittedAt     time.Time
}

// TransitionRunInput represents a single run status transition
type TransitionRunInput struct {
	RunID            string
	Status           domain.RunStatus
	ReasonCode       *domain.ReasonCode
	ValidatorVersion string
	At               time.Time
}

// UpsertEventInput represents the data needed to create or update an event
type UpsertEventInput struct {
	EventID                string
	Name                   string
	Slug                   string
	MinTier                int
	MinTotalDistanceMeters float64
	TargetDistanceMeters   float64
	ExpReward              int64
	StartTime              time.Time
	EndTime                time.Time
	Active                 bool
}

// UpdateParticipationStatusInput represents a participation status change
type UpdateParticipationStatusInput struct {
	ParticipationID string
	Status          domain.ParticipationStatus
	CompletedRunID  *string
	CompletedAt     *time.Time
}

// CreateAuthChallengeInput represents a login challenge to persist
type CreateAuthChallengeInput struct {
	WalletAddress string
	Challenge     string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}
