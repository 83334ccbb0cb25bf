package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/mocks"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/store/schema"
	"github.com/runera/runera-backend/internal/testutil"
)

const (
	testWallet  = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	testEventID = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

var testNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

type testEngine struct {
	store  store.Store
	engine events.Engine
}

func setupTestEngine(t *testing.T) *testEngine {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	st := testutil.OpenTestStore(t)
	return &testEngine{store: st, engine: events.NewEngine(st, clock)}
}

func (te *testEngine) seed(t *testing.T, input events.SeedEventInput) *schema.Event {
	if input.EventID == "" {
		input.EventID = testEventID
	}
	if input.StartTime.IsZero() {
		input.StartTime = testNow.Add(-24 * time.Hour)
	}
	if input.EndTime.IsZero() {
		input.EndTime = testNow.Add(24 * time.Hour)
	}
	event, err := te.engine.SeedEvent(context.Background(), input)
	require.NoError(t, err)
	return event
}

func (te *testEngine) user(t *testing.T, tier int, distance float64) *schema.User {
	ctx := context.Background()
	user, err := te.store.UpsertUserByWallet(ctx, testWallet)
	require.NoError(t, err)
	require.NoError(t, te.store.UpdateUserProgression(ctx, store.UpdateUserProgressionInput{
		UserID: user.ID,
		Progression: domain.Progression{
			Tier:                domain.Tier(tier),
			Level:               1,
			TotalDistanceMeters: distance,
		},
	}))
	user, err = te.store.GetUserByWallet(ctx, testWallet)
	require.NoError(t, err)
	return user
}

func TestCheckEligibility(t *testing.T) {
	event := &schema.Event{
		MinTier:                3,
		MinTotalDistanceMeters: 20000,
		StartTime:              testNow.Add(-time.Hour),
		EndTime:                testNow.Add(time.Hour),
		Active:                 true,
	}

	tests := []struct {
		name     string
		user     *schema.User
		now      time.Time
		active   bool
		eligible bool
	}{
		{name: "meets every threshold", user: &schema.User{Tier: 3, TotalDistanceMeters: 20000}, now: testNow, active: true, eligible: true},
		{name: "tier below minimum", user: &schema.User{Tier: 2, TotalDistanceMeters: 50000}, now: testNow, active: true},
		{name: "distance below minimum", user: &schema.User{Tier: 5, TotalDistanceMeters: 19999}, now: testNow, active: true},
		{name: "before window", user: &schema.User{Tier: 5, TotalDistanceMeters: 50000}, now: testNow.Add(-2 * time.Hour), active: true},
		{name: "window end is inclusive", user: &schema.User{Tier: 5, TotalDistanceMeters: 50000}, now: testNow.Add(time.Hour), active: true, eligible: true},
		{name: "inactive", user: &schema.User{Tier: 5, TotalDistanceMeters: 50000}, now: testNow},
		{name: "unknown user", user: nil, now: testNow, active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := *event
			e.Active = tt.active
			assert.Equal(t, tt.eligible, events.CheckEligibility(&e, tt.user, tt.now).Eligible)
		})
	}
}

func TestSeedEvent_Defaults(t *testing.T) {
	te := setupTestEngine(t)

	event, err := te.engine.SeedEvent(context.Background(), events.SeedEventInput{EventID: testEventID})
	require.NoError(t, err)

	assert.Equal(t, events.DEFAULT_EVENT_NAME, event.Name)
	assert.Equal(t, "runera-genesis-10k", event.Slug)
	assert.Equal(t, 1, event.MinTier)
	assert.Equal(t, 20000.0, event.MinTotalDistanceMeters)
	assert.Equal(t, 10000.0, event.TargetDistanceMeters)
	assert.Equal(t, int64(500), event.ExpReward)
	assert.True(t, event.Active)
	assert.True(t, testNow.Equal(event.StartTime))
}

func TestSeedEvent_Validation(t *testing.T) {
	te := setupTestEngine(t)

	_, err := te.engine.SeedEvent(context.Background(), events.SeedEventInput{EventID: "0x1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidEventID)

	_, err = te.engine.SeedEvent(context.Background(), events.SeedEventInput{
		EventID:   testEventID,
		StartTime: testNow,
		EndTime:   testNow.Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestJoin_NotEligibleCreatesNoRecord(t *testing.T) {
	te := setupTestEngine(t)
	event := te.seed(t, events.SeedEventInput{MinTier: 3, MinTotalDistanceMeters: 1})
	user := te.user(t, 2, 50000)

	_, err := te.engine.Join(context.Background(), testEventID, testWallet)
	assert.ErrorIs(t, err, domain.ErrNotEligible)

	participation, err := te.store.GetParticipation(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.Nil(t, participation)
}

func TestJoin_IsIdempotent(t *testing.T) {
	te := setupTestEngine(t)
	te.seed(t, events.SeedEventInput{MinTier: 1, MinTotalDistanceMeters: 1})
	te.user(t, 1, 100)

	first, err := te.engine.Join(context.Background(), testEventID, testWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusJoined, first.Status)

	second, err := te.engine.Join(context.Background(), testEventID, testWallet)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.ParticipationStatusJoined, second.Status)
}

func TestJoin_Errors(t *testing.T) {
	t.Run("closed event", func(t *testing.T) {
		te := setupTestEngine(t)
		te.seed(t, events.SeedEventInput{
			MinTotalDistanceMeters: 1,
			StartTime:              testNow.Add(time.Hour),
			EndTime:                testNow.Add(2 * time.Hour),
		})
		te.user(t, 5, 100000)

		_, err := te.engine.Join(context.Background(), testEventID, testWallet)
		assert.ErrorIs(t, err, domain.ErrEventClosed)
	})

	t.Run("unknown event", func(t *testing.T) {
		te := setupTestEngine(t)
		te.user(t, 5, 100000)

		_, err := te.engine.Join(context.Background(), testEventID, testWallet)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		te := setupTestEngine(t)
		te.seed(t, events.SeedEventInput{})

		_, err := te.engine.Join(context.Background(), testEventID, testWallet)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		te := setupTestEngine(t)
		_, err := te.engine.Join(context.Background(), testEventID, "wallet")
		assert.ErrorIs(t, err, domain.ErrInvalidWalletAddress)
	})
}

func TestApplyVerifiedRun_ProgressesAndCompletes(t *testing.T) {
	te := setupTestEngine(t)
	ctx := context.Background()
	event := te.seed(t, events.SeedEventInput{MinTotalDistanceMeters: 1, TargetDistanceMeters: 10000})
	user := te.user(t, 1, 100)

	_, err := te.engine.Join(ctx, testEventID, testWallet)
	require.NoError(t, err)

	short := &domain.RunVerifiedEvent{RunID: "run-short", UserID: user.ID, DistanceMeters: 5000, EndTime: testNow, VerifiedAt: testNow}
	require.NoError(t, te.engine.ApplyVerifiedRun(ctx, short))

	p, err := te.store.GetParticipation(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusInProgress, p.Status)

	long := &domain.RunVerifiedEvent{RunID: "5b3f1f0e-4a7f-4c39-9a8e-2f1f2d7f0b11", UserID: user.ID, DistanceMeters: 10000, EndTime: testNow, VerifiedAt: testNow}
	require.NoError(t, te.engine.ApplyVerifiedRun(ctx, long))

	p, err = te.store.GetParticipation(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusCompleted, p.Status)
	require.NotNil(t, p.CompletedRunID)
	assert.Equal(t, long.RunID, *p.CompletedRunID)

	count, err := te.store.CountCompletedParticipations(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Completed participations never reopen, and joining again is refused
	require.NoError(t, te.engine.ApplyVerifiedRun(ctx, short))
	p, err = te.store.GetParticipation(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusCompleted, p.Status)

	_, err = te.engine.Join(ctx, testEventID, testWallet)
	assert.ErrorIs(t, err, domain.ErrParticipationCompleted)
}

func TestApplyVerifiedRun_IgnoresRunsOutsideWindow(t *testing.T) {
	te := setupTestEngine(t)
	ctx := context.Background()
	event := te.seed(t, events.SeedEventInput{MinTotalDistanceMeters: 1})
	user := te.user(t, 1, 100)

	_, err := te.engine.Join(ctx, testEventID, testWallet)
	require.NoError(t, err)

	late := &domain.RunVerifiedEvent{RunID: "run-late", UserID: user.ID, DistanceMeters: 42195, EndTime: testNow.Add(48 * time.Hour)}
	require.NoError(t, te.engine.ApplyVerifiedRun(ctx, late))

	p, err := te.store.GetParticipation(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusJoined, p.Status)
}

func TestApplyVerifiedRun_CompletesAfterEventIsSwept(t *testing.T) {
	te := setupTestEngine(t)
	ctx := context.Background()
	event := te.seed(t, events.SeedEventInput{MinTotalDistanceMeters: 1, TargetDistanceMeters: 10000})
	user := te.user(t, 1, 100)

	_, err := te.engine.Join(ctx, testEventID, testWallet)
	require.NoError(t, err)

	// The window closes and the sweeper deactivates the event before the run is handled
	te.seed(t, events.SeedEventInput{
		MinTotalDistanceMeters: 1,
		TargetDistanceMeters:   10000,
		StartTime:              testNow.Add(-24 * time.Hour),
		EndTime:                testNow.Add(-time.Hour),
	})
	n, err := te.engine.DeactivateClosedEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	run := &domain.RunVerifiedEvent{
		RunID:          "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f",
		UserID:         user.ID,
		DistanceMeters: 10000,
		EndTime:        testNow.Add(-time.Hour - time.Minute),
		VerifiedAt:     testNow,
	}
	require.NoError(t, te.engine.ApplyVerifiedRun(ctx, run))

	p, err := te.store.GetParticipation(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationStatusCompleted, p.Status)
	require.NotNil(t, p.CompletedRunID)
	assert.Equal(t, run.RunID, *p.CompletedRunID)
}

func TestGetEligibility(t *testing.T) {
	te := setupTestEngine(t)
	ctx := context.Background()
	te.seed(t, events.SeedEventInput{MinTier: 2, MinTotalDistanceMeters: 1000})

	_, eligibility, err := te.engine.GetEligibility(ctx, testEventID, testWallet)
	require.NoError(t, err)
	assert.False(t, eligibility.Eligible)
	assert.Equal(t, 1, eligibility.UserTier)
	assert.Nil(t, eligibility.Participation)

	te.user(t, 2, 1000)
	_, err = te.engine.Join(ctx, testEventID, testWallet)
	require.NoError(t, err)

	_, eligibility, err = te.engine.GetEligibility(ctx, testEventID, testWallet)
	require.NoError(t, err)
	assert.True(t, eligibility.Eligible)
	require.NotNil(t, eligibility.Participation)
	assert.Equal(t, domain.ParticipationStatusJoined, *eligibility.Participation)
}

func TestDeactivateClosedEvents(t *testing.T) {
	te := setupTestEngine(t)
	te.seed(t, events.SeedEventInput{StartTime: testNow.Add(-48 * time.Hour), EndTime: testNow.Add(-time.Hour)})

	n, err := te.engine.DeactivateClosedEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := te.engine.ListActiveEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}
