package dto

import (
	"encoding/json"

	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/store/schema"
)

// MapUserToDTO maps a user row to its response
func MapUserToDTO(user *schema.User) UserResponse {
	return UserResponse{
		ID:                  user.ID,
		WalletAddress:       user.WalletAddress,
		Tier:                user.Tier,
		Level:               user.Level,
		Exp:                 user.XP,
		TotalDistanceMeters: user.TotalDistanceMeters,
		RunCount:            user.RunCount,
		VerifiedRunCount:    user.VerifiedRunCount,
		LongestStreakDays:   user.LongestStreakDays,
	}
}

// MapProfileToDTO maps a user row and its completed participation count to a profile
func MapProfileToDTO(user *schema.User, achievementCount int64) *ProfileResponse {
	return &ProfileResponse{
		UserResponse:     MapUserToDTO(user),
		AchievementCount: achievementCount,
		Attestation: AttestationResponse{
			Sequence:   user.AttestationSequence,
			Deadline:   user.AttestationDeadline,
			LastSyncAt: user.LastSyncAt,
		},
	}
}

// MapRunToDTO maps a run and its audit trail to a response
func MapRunToDTO(run *schema.Run, history []schema.RunStatusHistory) *RunResponse {
	resp := &RunResponse{
		ID:               run.ID,
		UserID:           run.UserID,
		Status:           run.Status,
		DistanceMeters:   run.DistanceMeters,
		DurationSeconds:  run.DurationSeconds,
		StartTime:        run.StartTime,
		EndTime:          run.EndTime,
		AvgPaceSeconds:   run.AvgPaceSeconds,
		ReasonCode:       run.ReasonCode,
		ValidatorVersion: run.ValidatorVersion,
		SubmittedAt:      run.SubmittedAt,
		ValidatedAt:      run.ValidatedAt,
		VerifiedAt:       run.VerifiedAt,
		RejectedAt:       run.RejectedAt,
		History:          make([]RunStatusHistoryResponse, len(history)),
	}

	for i, h := range history {
		resp.History[i] = RunStatusHistoryResponse{
			Status:     h.Status,
			ReasonCode: h.ReasonCode,
			CreatedAt:  h.CreatedAt,
		}
		if len(h.Meta) > 0 {
			resp.History[i].Meta = json.RawMessage(h.Meta)
		}
	}

	return resp
}

// MapEventToDTO maps an event row to its response
func MapEventToDTO(event *schema.Event) EventResponse {
	return EventResponse{
		EventID:                event.EventID,
		Name:                   event.Name,
		Slug:                   event.Slug,
		MinTier:                event.MinTier,
		MinTotalDistanceMeters: event.MinTotalDistanceMeters,
		TargetDistanceMeters:   event.TargetDistanceMeters,
		ExpReward:              event.ExpReward,
		StartTime:              event.StartTime,
		EndTime:                event.EndTime,
		Active:                 event.Active,
	}
}

// MapEligibilityToDTO pairs an event with the evaluation of its join rules
func MapEligibilityToDTO(event *schema.Event, eligibility *events.Eligibility) *EligibilityResponse {
	return &EligibilityResponse{
		Event:       MapEventToDTO(event),
		Eligibility: *eligibility,
	}
}

// MapParticipationToDTO maps a participation row to its response
func MapParticipationToDTO(eventID string, p *schema.EventParticipation) *ParticipationResponse {
	return &ParticipationResponse{
		EventID:        eventID,
		Status:         p.Status,
		JoinedAt:       p.JoinedAt,
		CompletedRunID: p.CompletedRunID,
		CompletedAt:    p.CompletedAt,
	}
}
