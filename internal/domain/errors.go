package domain

import "errors"

var (
	// ErrInvalidWalletAddress is returned when a wallet address is not a 0x-prefixed 20-byte hex string
	ErrInvalidWalletAddress = errors.New("invalid wallet address")

	// ErrInvalidEventID is returned when an event ID is not a 0x-prefixed 32-byte hex string
	ErrInvalidEventID = errors.New("invalid event id")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrRunNotFound is returned when a run is not found
	ErrRunNotFound = errors.New("run not found")

	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrStatusRegression is returned when a run transition would leave a terminal state or move backwards
	ErrStatusRegression = errors.New("invalid run status transition")

	// ErrEventClosed is returned when joining an event outside its window or while inactive
	ErrEventClosed = errors.New("event is not open")

	// ErrNotEligible is returned when a user does not meet an event's tier or distance threshold
	ErrNotEligible = errors.New("user is not eligible for event")

	// ErrParticipationCompleted is returned when joining an event the user already completed
	ErrParticipationCompleted = errors.New("event participation already completed")

	// ErrInvalidAuthChallenge is returned when an auth challenge is unknown or already used
	ErrInvalidAuthChallenge = errors.New("auth challenge not found or already used")

	// ErrAuthChallengeExpired is returned when an auth challenge is past its expiry
	ErrAuthChallengeExpired = errors.New("auth challenge expired")

	// ErrSignatureInvalid is returned when a wallet signature cannot be recovered
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrSignatureMismatch is returned when a recovered signer differs from the claimed wallet
	ErrSignatureMismatch = errors.New("signature does not match wallet address")

	// ErrSignerNotConfigured is returned when attestation signing configuration is absent
	ErrSignerNotConfigured = errors.New("attestation signer is not configured")
)
