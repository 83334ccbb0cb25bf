package validator

import (
	"github.com/runera/runera-backend/internal/domain"
)

// Validate applies the anti-cheat rules to a run in fixed priority order.
// The first failing rule decides the reason code.
func Validate(m domain.RunMeasurements) domain.Verdict {
	if m.DeviceHash == "" {
		return reject(domain.ReasonNoDeviceAttestation)
	}

	if m.StartTime.IsZero() || m.EndTime.IsZero() || !m.EndTime.After(m.StartTime) {
		return reject(domain.ReasonTimestampInvalid)
	}

	if !(m.DistanceMeters > 0) {
		return reject(domain.ReasonDistanceShort)
	}

	if !(m.DurationSeconds > 0) {
		return reject(domain.ReasonDurationShort)
	}

	if PaceSecondsPerKm(m.DistanceMeters, m.DurationSeconds) < domain.MIN_PACE_SECONDS_PER_KM {
		return reject(domain.ReasonPaceImpossible)
	}

	return domain.Verdict{Status: domain.RunStatusVerified}
}

// PaceSecondsPerKm returns the average pace. Callers must ensure distance is positive.
func PaceSecondsPerKm(distanceMeters, durationSeconds float64) float64 {
	return durationSeconds / (distanceMeters / 1000)
}

func reject(code domain.ReasonCode) domain.Verdict {
	return domain.Verdict{Status: domain.RunStatusRejected, ReasonCode: &code}
}
