package progression

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runera/runera-backend/internal/domain"
)

func day(n int) time.Time {
	return time.Unix(int64(n)*secondsPerDay, 0).UTC().Add(7 * time.Hour)
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp    int64
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{800, 9},
		{-10, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, CalculateLevel(tt.xp), "xp=%d", tt.xp)
	}
}

func TestCalculateTier(t *testing.T) {
	expected := map[int]domain.Tier{
		1: 1, 2: 1,
		3: 2, 4: 2,
		5: 3, 6: 3,
		7: 4, 8: 4,
		9: 5, 10: 5, 50: 5,
	}
	for level, tier := range expected {
		assert.Equal(t, tier, CalculateTier(level), "level=%d", level)
	}
}

func TestDayNumber(t *testing.T) {
	assert.Equal(t, int64(0), DayNumber(time.Date(1970, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, int64(1), DayNumber(time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)))

	// Calendar day is taken in UTC, not in the timestamp's zone
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t,
		DayNumber(time.Date(2025, 1, 14, 20, 0, 0, 0, time.UTC)),
		DayNumber(time.Date(2025, 1, 15, 5, 0, 0, 0, tokyo)),
	)
}

func TestLongestStreakDays(t *testing.T) {
	tests := []struct {
		name     string
		days     []int
		expected int
	}{
		{"empty", nil, 0},
		{"single", []int{10}, 1},
		{"gap after three", []int{1, 2, 3, 5}, 3},
		{"duplicates collapse", []int{1, 1, 2, 2, 2, 3}, 3},
		{"later streak wins", []int{1, 3, 4, 5, 6, 9}, 4},
		{"no consecutive days", []int{2, 4, 6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := make([]time.Time, 0, len(tt.days))
			for _, d := range tt.days {
				times = append(times, day(d))
			}
			assert.Equal(t, tt.expected, LongestStreakDays(times))
		})
	}
}

func TestLongestStreakDays_OrderIndependentAndIdempotent(t *testing.T) {
	times := []time.Time{day(5), day(1), day(3), day(2), day(8), day(9), day(7), day(10)}
	expected := LongestStreakDays(times)
	assert.Equal(t, 4, expected)

	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		shuffled := append([]time.Time(nil), times...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, expected, LongestStreakDays(shuffled))
	}

	assert.Equal(t, expected, LongestStreakDays(times))
}

func TestApply(t *testing.T) {
	current := domain.Progression{
		XP:                  180,
		Level:               2,
		Tier:                1,
		RunCount:            4,
		VerifiedRunCount:    2,
		TotalDistanceMeters: 15000,
		LongestStreakDays:   1,
	}

	next := Apply(current, VerifiedRun{DistanceMeters: 5000}, []time.Time{day(1), day(2), day(4)}, 100)

	assert.Equal(t, int64(280), next.XP)
	assert.Equal(t, 3, next.Level)
	assert.Equal(t, domain.Tier(2), next.Tier)
	assert.Equal(t, 4, next.RunCount)
	assert.Equal(t, 3, next.VerifiedRunCount)
	assert.InDelta(t, 20000.0, next.TotalDistanceMeters, 1e-9)
	assert.Equal(t, 2, next.LongestStreakDays)

	// Same inputs give the same output
	assert.Equal(t, next, Apply(current, VerifiedRun{DistanceMeters: 5000}, []time.Time{day(4), day(2), day(1)}, 100))
}

func TestApply_StreakNeverShrinks(t *testing.T) {
	current := domain.Progression{LongestStreakDays: 6}
	next := Apply(current, VerifiedRun{DistanceMeters: 1000}, []time.Time{day(1)}, 100)
	assert.Equal(t, 6, next.LongestStreakDays)
}
