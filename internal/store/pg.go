package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RunInTx executes fn inside a single database transaction
func (s *pgStore) RunInTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// =============================================================================
// Users
// =============================================================================

// UpsertUserByWallet creates the user for a wallet if it does not exist and returns it
func (s *pgStore) UpsertUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	user := schema.User{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		XP:            0,
		Level:         1,
		Tier:          1,
	}

	// Concurrent first submissions for the same wallet race on the unique index
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_address"}},
			DoNothing: true,
		}).
		Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	var existing schema.User
	if err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to get user after upsert: %w", err)
	}

	return &existing, nil
}

// GetUserByWallet retrieves a user by wallet address
func (s *pgStore) GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *pgStore) GetUserByID(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// LockUserByWallet retrieves a user with SELECT ... FOR UPDATE.
// Only meaningful inside RunInTx; the lock is released on commit or rollback.
func (s *pgStore) LockUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_address = ?", walletAddress).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return &user, nil
}

// IncrementUserRunCount bumps the lifetime run count of a user
func (s *pgStore) IncrementUserRunCount(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", userID).
		Update("run_count", gorm.Expr("run_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment run count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateUserProgression persists the progression and attestation sequence of a user
func (s *pgStore) UpdateUserProgression(ctx context.Context, input UpdateUserProgressionInput) error {
	p := input.Progression
	updates := map[string]any{
		"xp":                    p.XP,
		"level":                 p.Level,
		"tier":                  int(p.Tier),
		"verified_run_count":    p.VerifiedRunCount,
		"total_distance_meters": p.TotalDistanceMeters,
		"longest_streak_days":   p.LongestStreakDays,
		"attestation_sequence":  input.AttestationSequence,
	}
	if input.AttestationDeadline != nil {
		updates["attestation_deadline"] = input.AttestationDeadline.UTC()
	}
	if input.LastSyncAt != nil {
		updates["last_sync_at"] = input.LastSyncAt.UTC()
	}

	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", input.UserID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update user progression: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// =============================================================================
// Runs
// =============================================================================

// CreateRun creates a run in SUBMITTED status together with its first audit row
func (s *pgStore) CreateRun(ctx context.Context, input CreateRunInput) (*schema.Run, error) {
	run := schema.Run{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		Status:          domain.RunStatusSubmitted,
		DistanceMeters:  input.DistanceMeters,
		DurationSeconds: input.DurationSeconds,
		StartTime:       input.StartTime.UTC(),
		EndTime:         input.EndTime.UTC(),
		DeviceHash:      input.DeviceHash,
		AvgPaceSeconds:  input.AvgPaceSeconds,
		SubmittedAt:     input.SubmittedAt.UTC(),
	}

	metaJSON, err := json.Marshal(schema.RunTransitionMeta{AvgPaceSeconds: input.AvgPaceSeconds})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run status meta: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}

		history := schema.RunStatusHistory{
			RunID:     run.ID,
			Status:    domain.RunStatusSubmitted,
			Meta:      metaJSON,
			CreatedAt: run.SubmittedAt,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create run status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// TransitionRun appends an audit row and moves the run to the next status.
// Transitions that do not directly follow the current status fail with domain.ErrStatusRegression.
func (s *pgStore) TransitionRun(ctx context.Context, input TransitionRunInput) (*schema.Run, error) {
	var run schema.Run

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RunID).
			First(&run).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRunNotFound
			}
			return fmt.Errorf("failed to get run: %w", err)
		}

		if !run.Status.CanTransitionTo(input.Status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrStatusRegression, run.Status, input.Status)
		}

		at := input.At.UTC()
		metaJSON, err := json.Marshal(schema.RunTransitionMeta{ValidatorVersion: input.ValidatorVersion})
		if err != nil {
			return fmt.Errorf("failed to marshal run status meta: %w", err)
		}

		// The audit row goes in before the run row changes
		history := schema.RunStatusHistory{
			RunID:      run.ID,
			Status:     input.Status,
			ReasonCode: input.ReasonCode,
			Meta:       metaJSON,
			CreatedAt:  at,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create run status history: %w", err)
		}

		updates := map[string]any{
			"status": input.Status,
		}
		switch input.Status {
		case domain.RunStatusVerified:
			updates["verified_at"] = at
			updates["validated_at"] = at
		case domain.RunStatusRejected:
			updates["rejected_at"] = at
			updates["validated_at"] = at
			updates["reason_code"] = input.ReasonCode
		}
		if input.ValidatorVersion != "" {
			updates["validator_version"] = input.ValidatorVersion
		}

		if err := tx.Model(&schema.Run{}).Where("id = ?", run.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update run status: %w", err)
		}

		return tx.Where("id = ?", run.ID).First(&run).Error
	})
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// GetRunByID retrieves a run by ID
func (s *pgStore) GetRunByID(ctx context.Context, runID string) (*schema.Run, error) {
	var run schema.Run
	err := s.db.WithContext(ctx).Where("id = ?", runID).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetRunStatusHistory retrieves the audit trail of a run in transition order
func (s *pgStore) GetRunStatusHistory(ctx context.Context, runID string) ([]schema.RunStatusHistory, error) {
	var history []schema.RunStatusHistory
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get run status history: %w", err)
	}
	return history, nil
}

// ListVerifiedRunEndTimes returns the end time of every verified run of a user
func (s *pgStore) ListVerifiedRunEndTimes(ctx context.Context, userID string) ([]time.Time, error) {
	var runs []schema.Run
	err := s.db.WithContext(ctx).
		Select("end_time").
		Where("user_id = ? AND status = ?", userID, domain.RunStatusVerified).
		Order("end_time ASC").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list verified runs: %w", err)
	}

	endTimes := make([]time.Time, 0, len(runs))
	for _, run := range runs {
		endTimes = append(endTimes, run.EndTime)
	}
	return endTimes, nil
}

// =============================================================================
// Events
// =============================================================================

// UpsertEvent creates or updates an event keyed by its 32-byte event ID
func (s *pgStore) UpsertEvent(ctx context.Context, input UpsertEventInput) (*schema.Event, error) {
	event := schema.Event{
		EventID:                input.EventID,
		Name:                   input.Name,
		Slug:                   input.Slug,
		MinTier:                input.MinTier,
		MinTotalDistanceMeters: input.MinTotalDistanceMeters,
		TargetDistanceMeters:   input.TargetDistanceMeters,
		ExpReward:              input.ExpReward,
		StartTime:              input.StartTime.UTC(),
		EndTime:                input.EndTime.UTC(),
		Active:                 input.Active,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "slug", "min_tier", "min_total_distance_meters", "target_distance_meters",
				"exp_reward", "start_time", "end_time", "active", "updated_at",
			}),
		}).Create(&event).Error; err != nil {
			return fmt.Errorf("failed to upsert event: %w", err)
		}

		return tx.Where("event_id = ?", input.EventID).First(&event).Error
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetEventByEventID retrieves an event by its 32-byte event ID
func (s *pgStore) GetEventByEventID(ctx context.Context, eventID string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListActiveEvents returns active events ordered by start time
func (s *pgStore) ListActiveEvents(ctx context.Context) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active events: %w", err)
	}
	return events, nil
}

// DeactivateClosedEvents clears the active flag of events that ended before now
func (s *pgStore) DeactivateClosedEvents(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("active = ? AND end_time < ?", true, now.UTC()).
		Update("active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate closed events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Event participations
// =============================================================================

// GetParticipation retrieves the participation of a user in an event
func (s *pgStore) GetParticipation(ctx context.Context, userID string, eventID int64) (*schema.EventParticipation, error) {
	var participation schema.EventParticipation
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&participation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}
	return &participation, nil
}

// CreateParticipation creates a JOINED participation; an existing row is returned unchanged
func (s *pgStore) CreateParticipation(ctx context.Context, userID string, eventID int64, joinedAt time.Time) (*schema.EventParticipation, error) {
	participation := schema.EventParticipation{
		ID:         uuid.NewString(),
		UserID:     userID,
		EventRowID: eventID,
		Status:     domain.ParticipationStatusJoined,
		JoinedAt:   joinedAt.UTC(),
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&participation).Error; err != nil {
		return nil, fmt.Errorf("failed to create participation: %w", err)
	}

	var existing schema.EventParticipation
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to get participation after create: %w", err)
	}

	return &existing, nil
}

// ListOpenParticipationsForUser returns participations not yet completed, with their event loaded
func (s *pgStore) ListOpenParticipationsForUser(ctx context.Context, userID string) ([]schema.EventParticipation, error) {
	var participations []schema.EventParticipation
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ? AND status <> ?", userID, domain.ParticipationStatusCompleted).
		Order("joined_at ASC").
		Find(&participations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open participations: %w", err)
	}
	return participations, nil
}

// UpdateParticipationStatus moves an open participation forward.
// A COMPLETED participation never reopens, so completed rows are filtered out of the update.
func (s *pgStore) UpdateParticipationStatus(ctx context.Context, input UpdateParticipationStatusInput) error {
	updates := map[string]any{
		"status": input.Status,
	}
	if input.CompletedRunID != nil {
		updates["completed_run_id"] = *input.CompletedRunID
	}
	if input.CompletedAt != nil {
		updates["completed_at"] = input.CompletedAt.UTC()
	}

	result := s.db.WithContext(ctx).
		Model(&schema.EventParticipation{}).
		Where("id = ? AND status <> ?", input.ParticipationID, domain.ParticipationStatusCompleted).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update participation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrParticipationCompleted
	}
	return nil
}

// CountCompletedParticipations counts the completed participations of a user
func (s *pgStore) CountCompletedParticipations(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.EventParticipation{}).
		Where("user_id = ? AND status = ?", userID, domain.ParticipationStatusCompleted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count completed participations: %w", err)
	}
	return count, nil
}

// =============================================================================
// Auth challenges
// =============================================================================

// CreateAuthChallenge stores a login challenge issued for a wallet
func (s *pgStore) CreateAuthChallenge(ctx context.Context, input CreateAuthChallengeInput) (*schema.AuthChallenge, error) {
	challenge := schema.AuthChallenge{
		ID:            uuid.NewString(),
		WalletAddress: input.WalletAddress,
		Challenge:     input.Challenge,
		IssuedAt:      input.IssuedAt.UTC(),
		ExpiresAt:     input.ExpiresAt.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&challenge).Error; err != nil {
		return nil, fmt.Errorf("failed to create auth challenge: %w", err)
	}
	return &challenge, nil
}

// GetLatestUnusedAuthChallenge retrieves the newest unused challenge matching wallet and value
func (s *pgStore) GetLatestUnusedAuthChallenge(ctx context.Context, walletAddress string, challenge string) (*schema.AuthChallenge, error) {
	var authChallenge schema.AuthChallenge
	err := s.db.WithContext(ctx).
		Where("wallet_address = ? AND challenge = ? AND used_at IS NULL", walletAddress, challenge).
		Order("issued_at DESC").
		First(&authChallenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get auth challenge: %w", err)
	}
	return &authChallenge, nil
}

// MarkAuthChallengeUsed redeems a challenge for a user. A challenge can only be redeemed once.
func (s *pgStore) MarkAuthChallengeUsed(ctx context.Context, challengeID string, userID string, usedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.AuthChallenge{}).
		Where("id = ? AND used_at IS NULL", challengeID).
		Updates(map[string]any{
			"used_at": usedAt.UTC(),
			"user_id": userID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark auth challenge used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidAuthChallenge
	}
	return nil
}
