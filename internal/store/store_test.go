package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testWallet      = "0x1111111111111111111111111111111111111111"
	testOtherWallet = "0x2222222222222222222222222222222222222222"
	testEventID     = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func buildTestRun(userID string, endTime time.Time) CreateRunInput {
	device := "device-hash"
	return CreateRunInput{
		UserID:          userID,
		DistanceMeters:  5000,
		DurationSeconds: 1500,
		StartTime:       endTime.Add(-25 * time.Minute),
		EndTime:         endTime,
		DeviceHash:      &device,
		AvgPaceSeconds:  300,
		SubmittedAt:     endTime.Add(time.Minute),
	}
}

func buildTestEvent(eventID string, start, end time.Time) UpsertEventInput {
	return UpsertEventInput{
		EventID:                eventID,
		Name:                   "RUNERA Genesis 10K",
		Slug:                   "runera-genesis-10k",
		MinTier:                1,
		MinTotalDistanceMeters: 20000,
		TargetDistanceMeters:   10000,
		ExpReward:              500,
		StartTime:              start,
		EndTime:                end,
		Active:                 true,
	}
}

func transitionTo(t *testing.T, store Store, runID string, status domain.RunStatus, reason *domain.ReasonCode) *schema.Run {
	t.Helper()
	run, err := store.TransitionRun(context.Background(), TransitionRunInput{
		RunID:            runID,
		Status:           status,
		ReasonCode:       reason,
		ValidatorVersion: domain.VALIDATOR_VERSION,
		At:               time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotNil(t, run)
	return run
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert creates the user once", func(t *testing.T) {
		first, err := store.UpsertUserByWallet(ctx, testWallet)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, testWallet, first.WalletAddress)
		assert.Equal(t, int64(0), first.XP)
		assert.Equal(t, 1, first.Level)
		assert.Equal(t, 1, first.Tier)
		assert.Equal(t, int64(0), first.AttestationSequence)

		second, err := store.UpsertUserByWallet(ctx, testWallet)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("get by wallet and id", func(t *testing.T) {
		user, err := store.GetUserByWallet(ctx, testWallet)
		require.NoError(t, err)
		require.NotNil(t, user)

		byID, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, testWallet, byID.WalletAddress)
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		user, err := store.GetUserByWallet(ctx, testOtherWallet)
		require.NoError(t, err)
		assert.Nil(t, user)

		locked, err := store.LockUserByWallet(ctx, testOtherWallet)
		require.NoError(t, err)
		assert.Nil(t, locked)
	})

	t.Run("increment run count", func(t *testing.T) {
		user, err := store.UpsertUserByWallet(ctx, testWallet)
		require.NoError(t, err)

		require.NoError(t, store.IncrementUserRunCount(ctx, user.ID))
		require.NoError(t, store.IncrementUserRunCount(ctx, user.ID))

		user, err = store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, user.RunCount)

		err = store.IncrementUserRunCount(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("update progression persists sequence and deadline", func(t *testing.T) {
		user, err := store.UpsertUserByWallet(ctx, testWallet)
		require.NoError(t, err)

		deadline := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)
		syncAt := deadline.Add(-10 * time.Minute)
		err = store.UpdateUserProgression(ctx, UpdateUserProgressionInput{
			UserID: user.ID,
			Progression: domain.Progression{
				XP:                  300,
				Level:               4,
				Tier:                2,
				VerifiedRunCount:    3,
				TotalDistanceMeters: 15000,
				LongestStreakDays:   2,
			},
			AttestationSequence: 8,
			AttestationDeadline: &deadline,
			LastSyncAt:          &syncAt,
		})
		require.NoError(t, err)

		user, err = store.LockUserByWallet(ctx, testWallet)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(300), user.XP)
		assert.Equal(t, 4, user.Level)
		assert.Equal(t, 2, user.Tier)
		assert.Equal(t, 3, user.VerifiedRunCount)
		assert.InDelta(t, 15000, user.TotalDistanceMeters, 1e-9)
		assert.Equal(t, 2, user.LongestStreakDays)
		assert.Equal(t, int64(8), user.AttestationSequence)
		require.NotNil(t, user.AttestationDeadline)
		assert.True(t, deadline.Equal(*user.AttestationDeadline))
		require.NotNil(t, user.LastSyncAt)
		assert.True(t, syncAt.Equal(*user.LastSyncAt))
	})
}

// =============================================================================
// Test: Runs
// =============================================================================

func testRunLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, testWallet)
	require.NoError(t, err)

	t.Run("verified run has a complete ordered trail", func(t *testing.T) {
		run, err := store.CreateRun(ctx, buildTestRun(user.ID, time.Now().UTC()))
		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusSubmitted, run.Status)

		transitionTo(t, store, run.ID, domain.RunStatusValidating, nil)
		run = transitionTo(t, store, run.ID, domain.RunStatusVerified, nil)

		assert.Equal(t, domain.RunStatusVerified, run.Status)
		assert.Nil(t, run.ReasonCode)
		require.NotNil(t, run.VerifiedAt)
		require.NotNil(t, run.ValidatedAt)
		assert.Nil(t, run.RejectedAt)
		require.NotNil(t, run.ValidatorVersion)
		assert.Equal(t, domain.VALIDATOR_VERSION, *run.ValidatorVersion)

		history, err := store.GetRunStatusHistory(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, domain.RunStatusSubmitted, history[0].Status)
		assert.Equal(t, domain.RunStatusValidating, history[1].Status)
		assert.Equal(t, domain.RunStatusVerified, history[2].Status)

		var meta schema.RunTransitionMeta
		require.NoError(t, json.Unmarshal(history[2].Meta, &meta))
		assert.Equal(t, domain.VALIDATOR_VERSION, meta.ValidatorVersion)
	})

	t.Run("rejected run stores the reason code", func(t *testing.T) {
		run, err := store.CreateRun(ctx, buildTestRun(user.ID, time.Now().UTC()))
		require.NoError(t, err)

		reason := domain.ReasonPaceImpossible
		transitionTo(t, store, run.ID, domain.RunStatusValidating, nil)
		run = transitionTo(t, store, run.ID, domain.RunStatusRejected, &reason)

		require.NotNil(t, run.ReasonCode)
		assert.Equal(t, domain.ReasonPaceImpossible, *run.ReasonCode)
		require.NotNil(t, run.RejectedAt)
		assert.Nil(t, run.VerifiedAt)

		history, err := store.GetRunStatusHistory(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		require.NotNil(t, history[2].ReasonCode)
		assert.Equal(t, domain.ReasonPaceImpossible, *history[2].ReasonCode)
	})

	t.Run("status never regresses", func(t *testing.T) {
		run, err := store.CreateRun(ctx, buildTestRun(user.ID, time.Now().UTC()))
		require.NoError(t, err)

		// SUBMITTED cannot jump straight to a terminal state
		_, err = store.TransitionRun(ctx, TransitionRunInput{RunID: run.ID, Status: domain.RunStatusVerified, At: time.Now()})
		assert.ErrorIs(t, err, domain.ErrStatusRegression)

		transitionTo(t, store, run.ID, domain.RunStatusValidating, nil)
		transitionTo(t, store, run.ID, domain.RunStatusVerified, nil)

		for _, next := range []domain.RunStatus{domain.RunStatusSubmitted, domain.RunStatusValidating, domain.RunStatusRejected, domain.RunStatusVerified} {
			_, err = store.TransitionRun(ctx, TransitionRunInput{RunID: run.ID, Status: next, At: time.Now()})
			assert.ErrorIs(t, err, domain.ErrStatusRegression, "transition to %s", next)
		}

		// Failed transitions leave no audit rows behind
		history, err := store.GetRunStatusHistory(ctx, run.ID)
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("unknown run", func(t *testing.T) {
		_, err := store.TransitionRun(ctx, TransitionRunInput{
			RunID:  "00000000-0000-0000-0000-000000000000",
			Status: domain.RunStatusValidating,
			At:     time.Now(),
		})
		assert.True(t, errors.Is(err, domain.ErrRunNotFound))

		run, err := store.GetRunByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, run)
	})
}

func testListVerifiedRunEndTimes(t *testing.T, store Store) {
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, testWallet)
	require.NoError(t, err)
	other, err := store.UpsertUserByWallet(ctx, testOtherWallet)
	require.NoError(t, err)

	day1 := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	for _, end := range []time.Time{day2, day1} {
		run, err := store.CreateRun(ctx, buildTestRun(user.ID, end))
		require.NoError(t, err)
		transitionTo(t, store, run.ID, domain.RunStatusValidating, nil)
		transitionTo(t, store, run.ID, domain.RunStatusVerified, nil)
	}

	// Rejected and foreign runs are excluded
	reason := domain.ReasonDistanceShort
	rejected, err := store.CreateRun(ctx, buildTestRun(user.ID, day2.Add(24*time.Hour)))
	require.NoError(t, err)
	transitionTo(t, store, rejected.ID, domain.RunStatusValidating, nil)
	transitionTo(t, store, rejected.ID, domain.RunStatusRejected, &reason)

	foreign, err := store.CreateRun(ctx, buildTestRun(other.ID, day1))
	require.NoError(t, err)
	transitionTo(t, store, foreign.ID, domain.RunStatusValidating, nil)
	transitionTo(t, store, foreign.ID, domain.RunStatusVerified, nil)

	endTimes, err := store.ListVerifiedRunEndTimes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, endTimes, 2)
	assert.True(t, day1.Equal(endTimes[0]))
	assert.True(t, day2.Equal(endTimes[1]))
}

// =============================================================================
// Test: RunInTx
// =============================================================================

func testRunInTx(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := store.RunInTx(ctx, func(tx Store) error {
			_, err := tx.UpsertUserByWallet(ctx, testWallet)
			return err
		})
		require.NoError(t, err)

		user, err := store.GetUserByWallet(ctx, testWallet)
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("rollback on error leaves no partial state", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.RunInTx(ctx, func(tx Store) error {
			user, err := tx.UpsertUserByWallet(ctx, testOtherWallet)
			if err != nil {
				return err
			}
			run, err := tx.CreateRun(ctx, buildTestRun(user.ID, time.Now().UTC()))
			if err != nil {
				return err
			}
			if _, err := tx.TransitionRun(ctx, TransitionRunInput{RunID: run.ID, Status: domain.RunStatusValidating, At: time.Now()}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		user, err := store.GetUserByWallet(ctx, testOtherWallet)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// =============================================================================
// Test: Events
// =============================================================================

func testEvents(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("upsert by event id", func(t *testing.T) {
		created, err := store.UpsertEvent(ctx, buildTestEvent(testEventID, now.Add(-time.Hour), now.Add(time.Hour)))
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotZero(t, created.ID)
		assert.True(t, created.Active)

		input := buildTestEvent(testEventID, now.Add(-time.Hour), now.Add(2*time.Hour))
		input.Name = "Renamed"
		input.Slug = "renamed"
		input.TargetDistanceMeters = 5000
		updated, err := store.UpsertEvent(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "renamed", updated.Slug)
		assert.InDelta(t, 5000, updated.TargetDistanceMeters, 1e-9)

		got, err := store.GetEventByEventID(ctx, testEventID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("inactive upsert is kept inactive", func(t *testing.T) {
		input := buildTestEvent("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", now.Add(-time.Hour), now.Add(time.Hour))
		input.Active = false
		event, err := store.UpsertEvent(ctx, input)
		require.NoError(t, err)
		assert.False(t, event.Active)
	})

	t.Run("missing event returns nil", func(t *testing.T) {
		event, err := store.GetEventByEventID(ctx, "0xcccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc")
		require.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("deactivate closed events", func(t *testing.T) {
		_, err := store.UpsertEvent(ctx, buildTestEvent("0xdddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd", now.Add(-48*time.Hour), now.Add(-24*time.Hour)))
		require.NoError(t, err)

		active, err := store.ListActiveEvents(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 2)

		count, err := store.DeactivateClosedEvents(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		active, err = store.ListActiveEvents(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, testEventID, active[0].EventID)

		count, err = store.DeactivateClosedEvents(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// =============================================================================
// Test: Event participations
// =============================================================================

func testParticipations(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	user, err := store.UpsertUserByWallet(ctx, testWallet)
	require.NoError(t, err)
	event, err := store.UpsertEvent(ctx, buildTestEvent(testEventID, now.Add(-time.Hour), now.Add(time.Hour)))
	require.NoError(t, err)

	t.Run("create is idempotent", func(t *testing.T) {
		first, err := store.CreateParticipation(ctx, user.ID, event.ID, now)
		require.NoError(t, err)
		assert.Equal(t, domain.ParticipationStatusJoined, first.Status)

		second, err := store.CreateParticipation(ctx, user.ID, event.ID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		got, err := store.GetParticipation(ctx, user.ID, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("open participations carry their event", func(t *testing.T) {
		open, err := store.ListOpenParticipationsForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, event.ID, open[0].EventRowID)
		assert.Equal(t, event.ID, open[0].Event.ID)
		assert.Equal(t, testEventID, open[0].Event.EventID)
		assert.True(t, open[0].Event.Active)
		assert.Equal(t, 10000.0, open[0].Event.TargetDistanceMeters)
	})

	t.Run("completed participation never reopens", func(t *testing.T) {
		participation, err := store.GetParticipation(ctx, user.ID, event.ID)
		require.NoError(t, err)

		require.NoError(t, store.UpdateParticipationStatus(ctx, UpdateParticipationStatusInput{
			ParticipationID: participation.ID,
			Status:          domain.ParticipationStatusInProgress,
		}))

		runID := "11111111-1111-1111-1111-111111111111"
		completedAt := now.Add(10 * time.Minute)
		require.NoError(t, store.UpdateParticipationStatus(ctx, UpdateParticipationStatusInput{
			ParticipationID: participation.ID,
			Status:          domain.ParticipationStatusCompleted,
			CompletedRunID:  &runID,
			CompletedAt:     &completedAt,
		}))

		err = store.UpdateParticipationStatus(ctx, UpdateParticipationStatusInput{
			ParticipationID: participation.ID,
			Status:          domain.ParticipationStatusInProgress,
		})
		assert.ErrorIs(t, err, domain.ErrParticipationCompleted)

		got, err := store.GetParticipation(ctx, user.ID, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ParticipationStatusCompleted, got.Status)
		require.NotNil(t, got.CompletedRunID)
		assert.Equal(t, runID, *got.CompletedRunID)

		count, err := store.CountCompletedParticipations(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		open, err := store.ListOpenParticipationsForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("missing participation returns nil", func(t *testing.T) {
		got, err := store.GetParticipation(ctx, user.ID, event.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Auth challenges
// =============================================================================

func testAuthChallenges(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := store.CreateAuthChallenge(ctx, CreateAuthChallengeInput{
		WalletAddress: testWallet,
		Challenge:     "abc",
		IssuedAt:      now.Add(-2 * time.Minute),
		ExpiresAt:     now.Add(3 * time.Minute),
	})
	require.NoError(t, err)
	latest, err := store.CreateAuthChallenge(ctx, CreateAuthChallengeInput{
		WalletAddress: testWallet,
		Challenge:     "abc",
		IssuedAt:      now,
		ExpiresAt:     now.Add(5 * time.Minute),
	})
	require.NoError(t, err)

	got, err := store.GetLatestUnusedAuthChallenge(ctx, testWallet, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, latest.ID, got.ID)

	user, err := store.UpsertUserByWallet(ctx, testWallet)
	require.NoError(t, err)
	require.NoError(t, store.MarkAuthChallengeUsed(ctx, latest.ID, user.ID, now))

	err = store.MarkAuthChallengeUsed(ctx, latest.ID, user.ID, now)
	assert.ErrorIs(t, err, domain.ErrInvalidAuthChallenge)

	// The older challenge is still redeemable
	got, err = store.GetLatestUnusedAuthChallenge(ctx, testWallet, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEqual(t, latest.ID, got.ID)

	got, err = store.GetLatestUnusedAuthChallenge(ctx, testOtherWallet, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// RunStoreTests runs every store test against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"RunLifecycle", testRunLifecycle},
		{"ListVerifiedRunEndTimes", testListVerifiedRunEndTimes},
		{"RunInTx", testRunInTx},
		{"Events", testEvents},
		{"Participations", testParticipations},
		{"AuthChallenges", testAuthChallenges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
