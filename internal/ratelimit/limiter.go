package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/config"
	"github.com/runera/runera-backend/internal/logger"
)

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter defines the interface for keyed rate limiting
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key without blocking
	Allow(ctx context.Context, key string) (Decision, error)

	// Close stops background work and releases the Redis connection
	Close() error
}

// localEntry is a per-key limiter used while Redis is unavailable
type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	config         config.RateLimitConfig
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	limit          redis_rate.Limit
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*localEntry

	stop      chan struct{}
	closeOnce sync.Once
}

// NewLimiter creates a keyed limiter backed by Redis with an optional in-process fallback
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	l := &limiter{
		config:      cfg,
		redis:       rc,
		distributed: rc.NewRateLimiter(),
		clock:       clock,
		limit: redis_rate.Limit{
			Rate:   cfg.SubmissionsPerMinute,
			Burst:  cfg.Burst,
			Period: time.Minute,
		},
		local: make(map[string]*localEntry),
		stop:  make(chan struct{}),
	}
	l.redisAvailable.Store(redisAvailable)

	go l.monitor()

	logger.Info("Rate limiter initialized",
		zap.Int("submissions_per_minute", cfg.SubmissionsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", redisAvailable),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, l.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		if !l.config.EnableLocalFallback {
			return Decision{}, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	}

	if !l.config.EnableLocalFallback {
		return Decision{}, fmt.Errorf("redis rate limiter unavailable")
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowLocal(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	entry, ok := l.local[key]
	if !ok {
		perSecond := rate.Limit(float64(l.config.SubmissionsPerMinute) / 60)
		entry = &localEntry{limiter: rate.NewLimiter(perSecond, l.config.Burst)}
		l.local[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	reservation := entry.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return Decision{Allowed: false}
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(entry.limiter.TokensAt(now))}
}

// monitor periodically checks Redis health and expires idle local entries
func (l *limiter) monitor() {
	ticker := l.clock.NewTicker(l.config.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx)
		cancel()

		available := err == nil
		if !l.redisAvailable.Load() && available {
			logger.Info("Redis connection restored")
		}
		l.redisAvailable.Store(available)

		l.expireLocal()
	}
}

func (l *limiter) expireLocal() {
	cutoff := l.clock.Now().Add(-l.config.LocalEntryTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, entry := range l.local {
		if entry.lastSeen.Before(cutoff) {
			delete(l.local, key)
		}
	}
}

// Close stops the health monitor and closes the Redis connection
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.stop)
		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.SubmissionsPerMinute <= 0 {
		return fmt.Errorf("submissions_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.SubmissionsPerMinute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "runera:submit:"
	}
	if cfg.LocalEntryTTL <= 0 {
		cfg.LocalEntryTTL = 10 * time.Minute
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}
