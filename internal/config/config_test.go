package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	if content == "" {
		return filepath.Join(t.TempDir(), "nonexistent.yaml")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  user: runera
  password: secret
  dbname: runera
auth:
  jwt_secret: "jwt-secret"
  jwt_ttl: "24h"
ethereum:
  rpc_url: "https://rpc.sepolia-api.lisk.com"
  chain_id: 4202
  profile_contract_address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  signer_private_key: "0xabc"
  nonce_read_timeout: "1500ms"
redis:
  addr: "localhost:6379"
rate_limit:
  submissions_per_minute: 12
nats:
  url: "nats://localhost:4222"
progression:
  xp_per_run: 150
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
				assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
				assert.Equal(t, int64(4202), cfg.Ethereum.ChainID)
				assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Ethereum.ProfileContractAddress)
				assert.Equal(t, 1500*time.Millisecond, cfg.Ethereum.NonceReadTimeout)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 12, cfg.RateLimit.SubmissionsPerMinute)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, int64(150), cfg.Progression.XPPerRun)
			},
		},
		{
			name: "config with defaults",
			configFile: `
auth:
  jwt_secret: "jwt-secret"
database:
  host: localhost
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTTTL)
				assert.Equal(t, 5*time.Minute, cfg.Auth.AuthChallengeTTL)
				assert.Equal(t, 3*time.Second, cfg.Ethereum.NonceReadTimeout)
				assert.Equal(t, 600*time.Second, cfg.Ethereum.AttestationValidity)
				assert.Empty(t, cfg.Ethereum.SignerPrivateKey)
				assert.True(t, cfg.RateLimit.Enabled)
				assert.True(t, cfg.RateLimit.EnableLocalFallback)
				assert.Equal(t, 6, cfg.RateLimit.SubmissionsPerMinute)
				assert.Equal(t, "RUNERA_RUNS", cfg.NATS.StreamName)
				assert.Equal(t, "runera-api", cfg.NATS.ConnectionName)
				assert.Equal(t, int64(100), cfg.Progression.XPPerRun)
			},
		},
		{
			name: "missing jwt secret",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadParticipationWorkerConfig(t *testing.T) {
	cfg, err := LoadParticipationWorkerConfig(writeConfig(t, `
database:
  host: localhost
  dbname: runera
nats:
  url: "nats://localhost:4222"
worker:
  pool_size: 4
`), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "participation-worker", cfg.NATS.ConsumerName)
	assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
	assert.Equal(t, 5, cfg.NATS.MaxDeliver)
	assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
	assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)

	_, err = LoadParticipationWorkerConfig(writeConfig(t, "debug: true\n"), t.TempDir())
	assert.Error(t, err)
}

func TestLoadSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SweeperConfig)
	}{
		{
			name: "defaults",
			configFile: `
database:
  host: localhost
  dbname: runera
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, time.Minute, cfg.EventSweeper.Interval)
				assert.Equal(t, 5, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
			},
		},
		{
			name: "custom interval",
			configFile: `
database:
  host: localhost
  dbname: runera
event_sweeper:
  interval: "30s"
`,
			validate: func(t *testing.T, cfg *SweeperConfig) {
				assert.Equal(t, 30*time.Second, cfg.EventSweeper.Interval)
			},
		},
		{
			name:        "missing database host",
			configFile:  "database:\n  dbname: runera\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSweeperConfig(writeConfig(t, tt.configFile), t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAdminConfig_MissingFile(t *testing.T) {
	cfg, err := LoadAdminConfig(writeConfig(t, ""), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// Viper uses the RUNERA_ prefix
	envContent := `RUNERA_DEBUG=true
RUNERA_DATABASE_HOST=env-host
RUNERA_DATABASE_PORT=3306
RUNERA_AUTH_JWT_SECRET=env-secret
RUNERA_ETHEREUM_CHAIN_ID=4202
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, key := range []string{"RUNERA_DEBUG", "RUNERA_DATABASE_HOST", "RUNERA_DATABASE_PORT", "RUNERA_AUTH_JWT_SECRET", "RUNERA_ETHEREUM_CHAIN_ID"} {
			_ = os.Unsetenv(key)
		}
	})

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
auth:
  jwt_secret: file-secret
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	// The .env file is loaded with godotenv.Overload, so its values win over the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, int64(4202), cfg.Ethereum.ChainID)
}
