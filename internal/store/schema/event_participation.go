package schema

import (
	"time"

	"github.com/runera/runera-backend/internal/domain"
)

// EventParticipation represents the event_participations table - one row per (user, event)
type EventParticipation struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID references the participant
	UserID string `gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_event_participations_user_event,priority:1"`
	// EventRowID references events.id. It is not named EventID so the association cannot
	// be matched against Event.EventID, the on-chain identifier.
	EventRowID int64 `gorm:"column:event_id;not null;uniqueIndex:idx_event_participations_user_event,priority:2"`
	// Status progresses JOINED -> IN_PROGRESS -> COMPLETED
	Status domain.ParticipationStatus `gorm:"column:status;not null;type:text"`
	// CompletedRunID is the run that satisfied the event target
	CompletedRunID *string `gorm:"column:completed_run_id;type:uuid"`
	// JoinedAt is when the user joined
	JoinedAt time.Time `gorm:"column:joined_at;not null"`
	// CompletedAt is when the event was completed
	CompletedAt *time.Time `gorm:"column:completed_at"`
	// CreatedAt is the timestamp when this participation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this participation was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Event Event `gorm:"foreignKey:EventRowID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the EventParticipation model
func (EventParticipation) TableName() string {
	return "event_participations"
}
