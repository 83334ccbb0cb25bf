package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/api/server"
	"github.com/runera/runera-backend/internal/api/shared/executor"
	"github.com/runera/runera-backend/internal/attestation"
	"github.com/runera/runera-backend/internal/auth"
	"github.com/runera/runera-backend/internal/config"
	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/messaging"
	"github.com/runera/runera-backend/internal/providers/jetstream"
	"github.com/runera/runera-backend/internal/ratelimit"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/verification"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "api-server",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting RUNERA API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Attestation is disabled when signing material is absent
	attestor, closeAttestor, err := attestation.New(ctx, attestation.Config{
		Signer: attestation.SignerConfig{
			PrivateKey:      cfg.Ethereum.SignerPrivateKey,
			ContractAddress: cfg.Ethereum.ProfileContractAddress,
			ChainID:         cfg.Ethereum.ChainID,
		},
		RPCURL:           cfg.Ethereum.RPCURL,
		NonceReadTimeout: cfg.Ethereum.NonceReadTimeout,
		Validity:         cfg.Ethereum.AttestationValidity,
	}, adapter.NewEthClientDialer(), clock)
	if err != nil {
		logger.Fatal("Failed to initialize attestation", zap.Error(err))
	}
	defer closeAttestor()

	// Verified-run notifications are optional
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:               cfg.NATS.URL,
			StreamName:        cfg.NATS.StreamName,
			MaxReconnects:     cfg.NATS.MaxReconnects,
			ReconnectWait:     cfg.NATS.ReconnectWait,
			ConnectionName:    cfg.NATS.ConnectionName,
			PublishMaxElapsed: cfg.NATS.PublishMaxElapsed,
		}, adapter.NewNatsJetStream(), jsonAdapter, clock)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, verified runs will not be published")
	}

	// Per-wallet submission rate limit
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		limiter, err = ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
		if err != nil {
			logger.Fatal("Failed to initialize rate limiter", zap.Error(err))
		}
		defer func() {
			_ = limiter.Close()
		}()
	}

	authService, err := auth.NewService(auth.Config{
		JWTSecret:    cfg.Auth.JWTSecret,
		TokenTTL:     cfg.Auth.JWTTTL,
		ChallengeTTL: cfg.Auth.AuthChallengeTTL,
	}, dataStore, clock)
	if err != nil {
		logger.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	coordinator := verification.NewCoordinator(verification.Config{XPPerRun: cfg.Progression.XPPerRun}, dataStore, attestor, publisher, clock)
	engine := events.NewEngine(dataStore, clock)
	exec := executor.NewExecutor(dataStore, coordinator, engine, authService)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigin:   cfg.Server.CORSOrigin,
	}, exec, authService, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("message", "Server forced to shutdown"))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
