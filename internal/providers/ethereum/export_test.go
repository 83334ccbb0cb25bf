package ethereum

// ProfileABI exposes profileABI to the external ethereum_test package.
const ProfileABI = profileABI
