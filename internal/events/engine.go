package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/store/schema"
)

const (
	DEFAULT_EVENT_NAME         = "RUNERA Genesis 10K"
	DEFAULT_MIN_TIER           = 1
	DEFAULT_MIN_TOTAL_DISTANCE = 20000
	DEFAULT_TARGET_DISTANCE    = 10000
	DEFAULT_EXP_REWARD         = 500
	DEFAULT_EVENT_WINDOW       = 30 * 24 * time.Hour
)

// Eligibility explains whether a user may join an event
type Eligibility struct {
	Eligible   bool `json:"eligible"`
	Open       bool `json:"open"`
	TierOK     bool `json:"tierOk"`
	DistanceOK bool `json:"distanceOk"`

	UserTier                int     `json:"userTier"`
	UserTotalDistanceMeters float64 `json:"userTotalDistanceMeters"`

	Participation *domain.ParticipationStatus `json:"participationStatus,omitempty"`
}

// CheckEligibility evaluates the join rules of an event for a user at a point in time.
// A nil user is treated as a user without progression.
func CheckEligibility(event *schema.Event, user *schema.User, now time.Time) Eligibility {
	tier, distance := 1, 0.0
	if user != nil {
		tier, distance = user.Tier, user.TotalDistanceMeters
	}

	e := Eligibility{
		Open:                    event.IsOpen(now),
		TierOK:                  tier >= event.MinTier,
		DistanceOK:              distance >= event.MinTotalDistanceMeters,
		UserTier:                tier,
		UserTotalDistanceMeters: distance,
	}
	e.Eligible = e.Open && e.TierOK && e.DistanceOK
	return e
}

// SeedEventInput describes an event to create or update. Zero values take the defaults.
type SeedEventInput struct {
	EventID                string
	Name                   string
	MinTier                int
	MinTotalDistanceMeters float64
	TargetDistanceMeters   float64
	ExpReward              int64
	StartTime              time.Time
	EndTime                time.Time
	Inactive               bool
}

// Engine evaluates and records event participation
//
//go:generate mockgen -source=engine.go -destination=../mocks/events.go -package=mocks -mock_names=Engine=MockEventsEngine
type Engine interface {
	// ListActiveEvents returns the events currently flagged active
	ListActiveEvents(ctx context.Context) ([]schema.Event, error)
	// GetEligibility evaluates whether the wallet may join the event
	GetEligibility(ctx context.Context, eventID string, walletAddress string) (*schema.Event, *Eligibility, error)
	// Join records the participation of a user. Re-joining an open participation returns it unchanged.
	Join(ctx context.Context, eventID string, walletAddress string) (*schema.EventParticipation, error)
	// SeedEvent creates or updates an event
	SeedEvent(ctx context.Context, input SeedEventInput) (*schema.Event, error)
	// DeactivateClosedEvents clears the active flag of every event whose window has passed
	DeactivateClosedEvents(ctx context.Context) (int64, error)
	// ApplyVerifiedRun advances the open participations of the run's owner
	ApplyVerifiedRun(ctx context.Context, run *domain.RunVerifiedEvent) error
}

type engine struct {
	store store.Store
	clock adapter.Clock
}

// NewEngine creates a new events engine
func NewEngine(st store.Store, clock adapter.Clock) Engine {
	return &engine{store: st, clock: clock}
}

func (e *engine) ListActiveEvents(ctx context.Context) ([]schema.Event, error) {
	return e.store.ListActiveEvents(ctx)
}

func (e *engine) getEvent(ctx context.Context, eventID string) (*schema.Event, error) {
	eventID = strings.ToLower(strings.TrimSpace(eventID))
	if !domain.IsValidEventID(eventID) {
		return nil, domain.ErrInvalidEventID
	}

	event, err := e.store.GetEventByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (e *engine) GetEligibility(ctx context.Context, eventID string, walletAddress string) (*schema.Event, *Eligibility, error) {
	wallet, err := domain.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, nil, err
	}

	event, err := e.getEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	user, err := e.store.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, nil, err
	}

	eligibility := CheckEligibility(event, user, e.clock.Now())
	if user != nil {
		participation, err := e.store.GetParticipation(ctx, user.ID, event.ID)
		if err != nil {
			return nil, nil, err
		}
		if participation != nil {
			eligibility.Participation = &participation.Status
		}
	}

	return event, &eligibility, nil
}

func (e *engine) Join(ctx context.Context, eventID string, walletAddress string) (*schema.EventParticipation, error) {
	wallet, err := domain.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, err
	}

	event, err := e.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var participation *schema.EventParticipation
	err = e.store.RunInTx(ctx, func(tx store.Store) error {
		user, err := tx.LockUserByWallet(ctx, wallet)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		existing, err := tx.GetParticipation(ctx, user.ID, event.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.Status.IsCompleted() {
				return domain.ErrParticipationCompleted
			}
			participation = existing
			return nil
		}

		now := e.clock.Now()
		eligibility := CheckEligibility(event, user, now)
		if !eligibility.Open {
			return domain.ErrEventClosed
		}
		if !eligibility.Eligible {
			return domain.ErrNotEligible
		}

		participation, err = tx.CreateParticipation(ctx, user.ID, event.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Event joined",
		zap.String("event_id", event.EventID),
		zap.String("wallet_address", wallet),
		zap.String("status", string(participation.Status)))

	return participation, nil
}

func (e *engine) SeedEvent(ctx context.Context, input SeedEventInput) (*schema.Event, error) {
	eventID := strings.ToLower(strings.TrimSpace(input.EventID))
	if !domain.IsValidEventID(eventID) {
		return nil, domain.ErrInvalidEventID
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DEFAULT_EVENT_NAME
	}
	minTier := input.MinTier
	if minTier <= 0 {
		minTier = DEFAULT_MIN_TIER
	}
	minDistance := input.MinTotalDistanceMeters
	if minDistance <= 0 {
		minDistance = DEFAULT_MIN_TOTAL_DISTANCE
	}
	target := input.TargetDistanceMeters
	if target <= 0 {
		target = DEFAULT_TARGET_DISTANCE
	}
	reward := input.ExpReward
	if reward <= 0 {
		reward = DEFAULT_EXP_REWARD
	}
	start := input.StartTime
	if start.IsZero() {
		start = e.clock.Now()
	}
	end := input.EndTime
	if end.IsZero() {
		end = start.Add(DEFAULT_EVENT_WINDOW)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("event end time must be after start time")
	}

	event, err := e.store.UpsertEvent(ctx, store.UpsertEventInput{
		EventID:                eventID,
		Name:                   name,
		Slug:                   slug.Make(name),
		MinTier:                minTier,
		MinTotalDistanceMeters: minDistance,
		TargetDistanceMeters:   target,
		ExpReward:              reward,
		StartTime:              start,
		EndTime:                end,
		Active:                 !input.Inactive,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Event seeded",
		zap.String("event_id", event.EventID),
		zap.String("slug", event.Slug),
		zap.Bool("active", event.Active))

	return event, nil
}

func (e *engine) DeactivateClosedEvents(ctx context.Context) (int64, error) {
	return e.store.DeactivateClosedEvents(ctx, e.clock.Now())
}

// ApplyVerifiedRun moves each open participation of the user forward: a run reaching the event
// target completes it, any other qualifying run marks a JOINED participation IN_PROGRESS.
// Only events whose window contains the run's end time are considered. The active flag is
// ignored so a sweep that lands before the message is handled cannot drop the completion.
func (e *engine) ApplyVerifiedRun(ctx context.Context, run *domain.RunVerifiedEvent) error {
	participations, err := e.store.ListOpenParticipationsForUser(ctx, run.UserID)
	if err != nil {
		return err
	}

	for _, p := range participations {
		if !p.Event.WindowContains(run.EndTime) {
			continue
		}

		input := store.UpdateParticipationStatusInput{ParticipationID: p.ID}
		switch {
		case run.DistanceMeters >= p.Event.TargetDistanceMeters:
			completedAt := run.VerifiedAt
			runID := run.RunID
			input.Status = domain.ParticipationStatusCompleted
			input.CompletedRunID = &runID
			input.CompletedAt = &completedAt
		case p.Status == domain.ParticipationStatusJoined:
			input.Status = domain.ParticipationStatusInProgress
		default:
			continue
		}

		if err := e.store.UpdateParticipationStatus(ctx, input); err != nil {
			// Completed concurrently by a redelivered message
			if errors.Is(err, domain.ErrParticipationCompleted) {
				continue
			}
			return err
		}

		logger.InfoCtx(ctx, "Participation advanced",
			zap.String("event_id", p.Event.EventID),
			zap.String("run_id", run.RunID),
			zap.String("status", string(input.Status)))
	}

	return nil
}
