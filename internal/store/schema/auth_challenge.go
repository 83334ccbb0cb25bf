package schema

import "time"

// AuthChallenge represents the auth_challenges table - one-time login challenges.
// Unrelated to the attestation sequence on users.
type AuthChallenge struct {
	// ID is the internal database primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// WalletAddress is the lowercase wallet the challenge was issued for
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index:idx_auth_challenges_wallet_challenge,priority:1"`
	// Challenge is the random hex string the wallet must sign
	Challenge string `gorm:"column:challenge;not null;type:text;index:idx_auth_challenges_wallet_challenge,priority:2"`
	// IssuedAt is when the challenge was created
	IssuedAt time.Time `gorm:"column:issued_at;not null"`
	// ExpiresAt is when the challenge stops being accepted
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	// UsedAt is set once the challenge has been redeemed
	UsedAt *time.Time `gorm:"column:used_at"`
	// UserID is the user that redeemed the challenge
	UserID *string `gorm:"column:user_id;type:uuid"`
}

// TableName specifies the table name for the AuthChallenge model
func (AuthChallenge) TableName() string {
	return "auth_challenges"
}
