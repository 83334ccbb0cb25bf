package schema

import (
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

// Run represents the runs table - one row per submission, immutable once terminal
type Run struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID references the submitting user
	UserID string `gorm:"column:user_id;not null;type:uuid;index:idx_runs_user_status,priority:1"`
	// Status is the current state in the run state machine
	Status domain.RunStatus `gorm:"column:status;not null;type:text;index:idx_runs_user_status,priority:2"`
	// DistanceMeters is the submitted distance
	DistanceMeters float64 `gorm:"column:distance_meters;not null"`
	// DurationSeconds is the submitted duration
	DurationSeconds float64 `gorm:"column:duration_seconds;not null"`
	// StartTime is when the run started
	StartTime time.Time `gorm:"column:start_time;not null"`
	// EndTime is when the run ended
	EndTime time.Time `gorm:"column:end_time;not null"`
	// DeviceHash is the opaque device attestation token
	DeviceHash *string `gorm:"column:device_hash;type:text"`
	// AvgPaceSeconds is the rounded average pace in seconds per kilometer
	AvgPaceSeconds int64 `gorm:"column:avg_pace_seconds;not null"`
	// ReasonCode is set only when the run is rejected
	ReasonCode *domain.ReasonCode `gorm:"column:reason_code;type:text"`
	// ValidatorVersion tags the rule set that produced the verdict
	ValidatorVersion *string `gorm:"column:validator_version;type:text"`
	// SubmittedAt is when the run was received
	SubmittedAt time.Time `gorm:"column:submitted_at;not null"`
	// ValidatedAt is when the verdict was recorded
	ValidatedAt *time.Time `gorm:"column:validated_at"`
	// VerifiedAt is set when the run reached VERIFIED
	VerifiedAt *time.Time `gorm:"column:verified_at"`
	// RejectedAt is set when the run reached REJECTED
	RejectedAt *time.Time `gorm:"column:rejected_at"`
	// CreatedAt is the timestamp when this run was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this run was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Run model
func (Run) TableName() string {
	return "runs"
}
