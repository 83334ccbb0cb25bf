package schema

import (
	"time"
)

// User represents the users table - one row per wallet, created on first login or run submission
type User struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// WalletAddress is the lowercase 0x wallet address identifying the user
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_users_wallet_address"`
	// XP is the accumulated experience
	XP int64 `gorm:"column:xp;not null;default:0"`
	// Level is derived from XP
	Level int `gorm:"column:level;not null;default:1"`
	// Tier is derived from Level
	Tier int `gorm:"column:tier;not null;default:1"`
	// RunCount counts every submitted run regardless of verdict
	RunCount int `gorm:"column:run_count;not null;default:0"`
	// VerifiedRunCount counts runs that reached VERIFIED
	VerifiedRunCount int `gorm:"column:verified_run_count;not null;default:0"`
	// TotalDistanceMeters sums the distance of verified runs
	TotalDistanceMeters float64 `gorm:"column:total_distance_meters;not null;default:0"`
	// LongestStreakDays is the longest run of consecutive UTC days with a verified run
	LongestStreakDays int `gorm:"column:longest_streak_days;not null;default:0"`
	// AttestationSequence is the next sequence value to be consumed by a signed stats update.
	// Unrelated to login challenges.
	AttestationSequence int64 `gorm:"column:attestation_sequence;not null;default:0"`
	// AttestationDeadline is the deadline of the most recently signed stats update
	AttestationDeadline *time.Time `gorm:"column:attestation_deadline"`
	// LastSyncAt is when the last stats update was signed
	LastSyncAt *time.Time `gorm:"column:last_sync_at"`
	// CreatedAt is the timestamp when this user was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
