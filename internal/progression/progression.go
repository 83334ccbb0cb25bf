package progression

import (
	"math"
	"slices"
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

const secondsPerDay = 86400

// CalculateLevel derives the level from accumulated experience
func CalculateLevel(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	return int(xp/domain.XP_PER_LEVEL) + 1
}

// CalculateTier maps a level onto its tier bracket
func CalculateTier(level int) domain.Tier {
	switch {
	case level >= 9:
		return 5
	case level >= 7:
		return 4
	case level >= 5:
		return 3
	case level >= 3:
		return 2
	default:
		return 1
	}
}

// DayNumber returns the number of whole UTC calendar days since the Unix epoch
func DayNumber(t time.Time) int64 {
	return int64(math.Floor(float64(t.UTC().Unix()) / secondsPerDay))
}

// LongestStreakDays returns the longest run of consecutive UTC calendar days
// covered by the given timestamps. The result does not depend on input order.
func LongestStreakDays(times []time.Time) int {
	if len(times) == 0 {
		return 0
	}

	days := make([]int64, 0, len(times))
	for _, t := range times {
		days = append(days, DayNumber(t))
	}
	slices.Sort(days)
	days = slices.Compact(days)

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
	}

	return longest
}

// VerifiedRun is the contribution of one newly verified run
type VerifiedRun struct {
	DistanceMeters float64
}

// Apply returns the progression after crediting one verified run.
// verifiedEndTimes must contain the end time of every verified run of the user,
// including the one being credited.
func Apply(current domain.Progression, run VerifiedRun, verifiedEndTimes []time.Time, xpPerRun int64) domain.Progression {
	next := current
	next.XP = current.XP + xpPerRun
	next.Level = CalculateLevel(next.XP)
	next.Tier = CalculateTier(next.Level)
	next.VerifiedRunCount = current.VerifiedRunCount + 1
	next.TotalDistanceMeters = current.TotalDistanceMeters + run.DistanceMeters

	// Full-history recomputation. The stored value only ever grows because the
	// verified set only ever grows, but keep the max to survive partial history reads.
	next.LongestStreakDays = max(current.LongestStreakDays, LongestStreakDays(verifiedEndTimes))

	return next
}
