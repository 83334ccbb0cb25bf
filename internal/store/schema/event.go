package schema

import (
	"time"
)

// Event represents the events table - time-boxed challenges
type Event struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the 0x-prefixed 32-byte identifier shared with the chain
	EventID string `gorm:"column:event_id;not null;type:text;uniqueIndex:idx_events_event_id"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Slug is the URL-safe form of Name
	Slug string `gorm:"column:slug;not null;type:text;default:''"`
	// MinTier is the minimum tier required to join
	MinTier int `gorm:"column:min_tier;not null;default:1"`
	// MinTotalDistanceMeters is the minimum lifetime verified distance required to join
	MinTotalDistanceMeters float64 `gorm:"column:min_total_distance_meters;not null;default:0"`
	// TargetDistanceMeters is the single-run distance that completes the event
	TargetDistanceMeters float64 `gorm:"column:target_distance_meters;not null"`
	// ExpReward is the experience granted on completion
	ExpReward int64 `gorm:"column:exp_reward;not null;default:0"`
	// StartTime opens the event window
	StartTime time.Time `gorm:"column:start_time;not null"`
	// EndTime closes the event window
	EndTime time.Time `gorm:"column:end_time;not null"`
	// Active is cleared by the sweeper once the window has passed
	Active bool `gorm:"column:active;not null;index:idx_events_active"`
	// CreatedAt is the timestamp when this event was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this event was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// IsOpen reports whether the event accepts participants at the given time
func (e *Event) IsOpen(now time.Time) bool {
	return e.Active && e.WindowContains(now)
}

// WindowContains reports whether t falls within [StartTime, EndTime], regardless of Active
func (e *Event) WindowContains(t time.Time) bool {
	return !t.Before(e.StartTime) && !t.After(e.EndTime)
}
