package domain

import "time"

const (
	// Anti-cheat rules
	MIN_PACE_SECONDS_PER_KM = 180
	VALIDATOR_VERSION       = "1.0.0"

	// Progression
	DEFAULT_XP_PER_RUN = 100
	XP_PER_LEVEL       = 100

	// Attestation
	ATTESTATION_VALIDITY = 600 * time.Second

	// Auth challenge
	AUTH_CHALLENGE_TTL    = 5 * time.Minute
	AUTH_CHALLENGE_PREFIX = "RUNERA login\nNonce: "

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)
