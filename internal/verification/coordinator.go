package verification

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/attestation"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/messaging"
	"github.com/runera/runera-backend/internal/progression"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/store/schema"
	"github.com/runera/runera-backend/internal/validator"
)

// SubmitRunInput is a well-formed run submission
type SubmitRunInput struct {
	// WalletAddress must already be lowercase
	WalletAddress   string
	DistanceMeters  float64
	DurationSeconds float64
	StartTime       time.Time
	EndTime         time.Time
	DeviceHash      string
}

// SubmitRunResult is the unified outcome of a submission
type SubmitRunResult struct {
	RunID       string                   `json:"runId"`
	Status      domain.RunStatus         `json:"status"`
	ReasonCode  *domain.ReasonCode       `json:"reasonCode"`
	OnchainSync *attestation.OnchainSync `json:"onchainSync,omitempty"`
}

// Config holds coordinator tunables
type Config struct {
	XPPerRun int64
}

// Coordinator runs the verification pipeline for one submission
//
//go:generate mockgen -source=coordinator.go -destination=../mocks/coordinator.go -package=mocks -mock_names=Coordinator=MockCoordinator
type Coordinator interface {
	// SubmitRun validates, persists and, when verified, credits a run.
	// The state machine, progression and attestation sequence are committed as one unit.
	SubmitRun(ctx context.Context, input SubmitRunInput) (*SubmitRunResult, error)
}

type coordinator struct {
	store     store.Store
	attestor  attestation.Attestor
	publisher messaging.Publisher
	clock     adapter.Clock
	xpPerRun  int64
}

// NewCoordinator creates a coordinator. publisher may be nil, in which case no notification is sent.
func NewCoordinator(cfg Config, st store.Store, attestor attestation.Attestor, publisher messaging.Publisher, clock adapter.Clock) Coordinator {
	xpPerRun := cfg.XPPerRun
	if xpPerRun <= 0 {
		xpPerRun = domain.DEFAULT_XP_PER_RUN
	}
	return &coordinator{
		store:     st,
		attestor:  attestor,
		publisher: publisher,
		clock:     clock,
		xpPerRun:  xpPerRun,
	}
}

func (c *coordinator) SubmitRun(ctx context.Context, input SubmitRunInput) (*SubmitRunResult, error) {
	if !domain.IsValidWalletAddress(input.WalletAddress) {
		return nil, domain.ErrInvalidWalletAddress
	}

	verdict := validator.Validate(domain.RunMeasurements{
		DistanceMeters:  input.DistanceMeters,
		DurationSeconds: input.DurationSeconds,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DeviceHash:      input.DeviceHash,
	})

	var avgPace int64
	if input.DistanceMeters > 0 {
		avgPace = int64(math.Round(validator.PaceSecondsPerKm(input.DistanceMeters, input.DurationSeconds)))
	}
	var deviceHash *string
	if input.DeviceHash != "" {
		deviceHash = &input.DeviceHash
	}

	ctx = logger.WithFields(ctx, zap.String("wallet_address", input.WalletAddress))

	var (
		result   *SubmitRunResult
		verified *domain.RunVerifiedEvent
	)
	err := c.store.RunInTx(ctx, func(tx store.Store) error {
		if _, err := tx.UpsertUserByWallet(ctx, input.WalletAddress); err != nil {
			return err
		}
		// Serializes concurrent submissions of the same user until commit
		user, err := tx.LockUserByWallet(ctx, input.WalletAddress)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		if err := tx.IncrementUserRunCount(ctx, user.ID); err != nil {
			return err
		}

		submittedAt := c.clock.Now()
		run, err := tx.CreateRun(ctx, store.CreateRunInput{
			UserID:          user.ID,
			DistanceMeters:  input.DistanceMeters,
			DurationSeconds: input.DurationSeconds,
			StartTime:       input.StartTime,
			EndTime:         input.EndTime,
			DeviceHash:      deviceHash,
			AvgPaceSeconds:  avgPace,
			SubmittedAt:     submittedAt,
		})
		if err != nil {
			return err
		}

		if _, err := tx.TransitionRun(ctx, store.TransitionRunInput{
			RunID:            run.ID,
			Status:           domain.RunStatusValidating,
			ValidatorVersion: domain.VALIDATOR_VERSION,
			At:               submittedAt,
		}); err != nil {
			return err
		}

		decidedAt := c.clock.Now()
		run, err = tx.TransitionRun(ctx, store.TransitionRunInput{
			RunID:            run.ID,
			Status:           verdict.Status,
			ReasonCode:       verdict.ReasonCode,
			ValidatorVersion: domain.VALIDATOR_VERSION,
			At:               decidedAt,
		})
		if err != nil {
			return err
		}

		result = &SubmitRunResult{
			RunID:      run.ID,
			Status:     run.Status,
			ReasonCode: run.ReasonCode,
		}
		if !verdict.Verified() {
			return nil
		}

		sync, err := c.creditVerifiedRun(ctx, tx, user, run)
		if err != nil {
			return err
		}
		result.OnchainSync = sync

		verified = &domain.RunVerifiedEvent{
			RunID:          run.ID,
			UserID:         user.ID,
			WalletAddress:  user.WalletAddress,
			DistanceMeters: run.DistanceMeters,
			EndTime:        run.EndTime,
			VerifiedAt:     decidedAt,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit run: %w", err)
	}

	logger.InfoCtx(ctx, "Run processed",
		zap.String("run_id", result.RunID),
		zap.String("status", string(result.Status)),
		zap.Bool("onchain_sync", result.OnchainSync != nil))

	if verified != nil {
		c.notify(ctx, verified)
	}

	return result, nil
}

// creditVerifiedRun applies progression and, when enabled, produces the attestation.
// Must run inside the submission transaction with the user row locked.
func (c *coordinator) creditVerifiedRun(ctx context.Context, tx store.Store, user *schema.User, run *schema.Run) (*attestation.OnchainSync, error) {
	endTimes, err := tx.ListVerifiedRunEndTimes(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	current := ProgressionOf(user)
	current.RunCount++
	next := progression.Apply(current, progression.VerifiedRun{DistanceMeters: run.DistanceMeters}, endTimes, c.xpPerRun)

	update := store.UpdateUserProgressionInput{
		UserID:              user.ID,
		Progression:         next,
		AttestationSequence: user.AttestationSequence,
	}

	var sync *attestation.OnchainSync
	if c.attestor != nil && c.attestor.Enabled() {
		achievements, err := tx.CountCompletedParticipations(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		res, err := c.attestor.Attest(ctx, attestation.Input{
			WalletAddress:    user.WalletAddress,
			Progression:      next,
			AchievementCount: achievements,
			Sequence: attestation.LocalSequence{
				WalletAddress: user.WalletAddress,
				Sequence:      user.AttestationSequence,
				LastDeadline:  user.AttestationDeadline,
			},
		})
		if err != nil {
			// Verification never depends on attestation; the next verified run retries with the same sequence
			logger.WarnCtx(ctx, "Skipping attestation", zap.Error(err), zap.String("run_id", run.ID))
		} else {
			sync = &res.Payload
			update.AttestationSequence = res.NextSequence
			update.AttestationDeadline = &res.Deadline
			update.LastSyncAt = &res.SignedAt
		}
	}

	if err := tx.UpdateUserProgression(ctx, update); err != nil {
		return nil, err
	}

	return sync, nil
}

func (c *coordinator) notify(ctx context.Context, event *domain.RunVerifiedEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishRunVerified(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish run verified event"),
			zap.String("run_id", event.RunID))
	}
}

// ProgressionOf reads the progression snapshot stored on a user
func ProgressionOf(user *schema.User) domain.Progression {
	return domain.Progression{
		XP:                  user.XP,
		Level:               user.Level,
		Tier:                domain.Tier(user.Tier),
		RunCount:            user.RunCount,
		VerifiedRunCount:    user.VerifiedRunCount,
		TotalDistanceMeters: user.TotalDistanceMeters,
		LongestStreakDays:   user.LongestStreakDays,
	}
}
