package store

import (
	"context"
	"time"

	"github.com/runera/runera-backend/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// RunInTx executes fn inside a single database transaction. The Store passed to fn is bound
	// to that transaction; any error returned by fn rolls everything back.
	RunInTx(ctx context.Context, fn func(tx Store) error) error

	// =============================================================================
	// Users
	// =============================================================================

	// UpsertUserByWallet creates the user for a wallet if it does not exist and returns it
	UpsertUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error)
	// GetUserByWallet retrieves a user by wallet address, nil if not found
	GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error)
	// GetUserByID retrieves a user by ID, nil if not found
	GetUserByID(ctx context.Context, userID string) (*schema.User, error)
	// LockUserByWallet retrieves a user with a row lock held until the surrounding transaction ends
	LockUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error)
	// IncrementUserRunCount bumps the lifetime run count of a user
	IncrementUserRunCount(ctx context.Context, userID string) error
	// UpdateUserProgression persists the progression and attestation sequence of a user
	UpdateUserProgression(ctx context.Context, input UpdateUserProgressionInput) error

	// =============================================================================
	// Runs
	// =============================================================================

	// CreateRun creates a run in SUBMITTED status together with its first audit row
	CreateRun(ctx context.Context, input CreateRunInput) (*schema.Run, error)
	// TransitionRun appends an audit row and moves the run to the next status
	TransitionRun(ctx context.Context, input TransitionRunInput) (*schema.Run, error)
	// GetRunByID retrieves a run by ID, nil if not found
	GetRunByID(ctx context.Context, runID string) (*schema.Run, error)
	// GetRunStatusHistory retrieves the audit trail of a run in transition order
	GetRunStatusHistory(ctx context.Context, runID string) ([]schema.RunStatusHistory, error)
	// ListVerifiedRunEndTimes returns the end time of every verified run of a user
	ListVerifiedRunEndTimes(ctx context.Context, userID string) ([]time.Time, error)

	// =============================================================================
	// Events
	// =============================================================================

	// UpsertEvent creates or updates an event keyed by its 32-byte event ID
	UpsertEvent(ctx context.Context, input UpsertEventInput) (*schema.Event, error)
	// GetEventByEventID retrieves an event by its 32-byte event ID, nil if not found
	GetEventByEventID(ctx context.Context, eventID string) (*schema.Event, error)
	// ListActiveEvents returns active events ordered by start time
	ListActiveEvents(ctx context.Context) ([]schema.Event, error)
	// DeactivateClosedEvents clears the active flag of events that ended before now
	DeactivateClosedEvents(ctx context.Context, now time.Time) (int64, error)

	// =============================================================================
	// Event participations
	// =============================================================================

	// GetParticipation retrieves the participation of a user in an event, nil if not found
	GetParticipation(ctx context.Context, userID string, eventID int64) (*schema.EventParticipation, error)
	// CreateParticipation creates a JOINED participation; an existing row is returned unchanged
	CreateParticipation(ctx context.Context, userID string, eventID int64, joinedAt time.Time) (*schema.EventParticipation, error)
	// ListOpenParticipationsForUser returns participations not yet completed, with their event loaded
	ListOpenParticipationsForUser(ctx context.Context, userID string) ([]schema.EventParticipation, error)
	// UpdateParticipationStatus moves an open participation forward; completed rows are never touched
	UpdateParticipationStatus(ctx context.Context, input UpdateParticipationStatusInput) error
	// CountCompletedParticipations counts the completed participations of a user
	CountCompletedParticipations(ctx context.Context, userID string) (int64, error)

	// =============================================================================
	// Auth challenges
	// =============================================================================

	// CreateAuthChallenge stores a login challenge issued for a wallet
	CreateAuthChallenge(ctx context.Context, input CreateAuthChallengeInput) (*schema.AuthChallenge, error)
	// GetLatestUnusedAuthChallenge retrieves the newest unused challenge matching wallet and value
	GetLatestUnusedAuthChallenge(ctx context.Context, walletAddress string, challenge string) (*schema.AuthChallenge, error)
	// MarkAuthChallengeUsed redeems a challenge for a user
	MarkAuthChallengeUsed(ctx context.Context, challengeID string, userID string, usedAt time.Time) error
}
