package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/logger"
)

// EventSweeperConfig holds configuration for the event sweeper
type EventSweeperConfig struct {
	Interval time.Duration
}

// eventSweeper clears the active flag of events whose window has closed
type eventSweeper struct {
	config    EventSweeperConfig
	engine    events.Engine
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewEventSweeper creates a new event sweeper
func NewEventSweeper(config EventSweeperConfig, engine events.Engine) Sweeper {
	return &eventSweeper{
		config:    config,
		engine:    engine,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *eventSweeper) Name() string {
	return "event-sweeper"
}

// Start schedules the sweep and blocks until the context is canceled or Stop is called
func (s *eventSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.config.Interval),
		gocron.NewTask(s.sweep, ctx),
		gocron.WithName(s.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule event sweep: %w", err)
	}

	logger.InfoCtx(ctx, "Starting event sweeper", zap.Duration("interval", s.config.Interval))
	scheduler.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Event sweeper stopping due to context cancellation")
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Event sweeper stop requested")
	}

	// Shutdown waits for a running sweep to finish
	if err := scheduler.Shutdown(); err != nil {
		logger.WarnCtx(ctx, "Scheduler shutdown failed", zap.Error(err))
	}
	return nil
}

func (s *eventSweeper) sweep(ctx context.Context) {
	deactivated, err := s.engine.DeactivateClosedEvents(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to deactivate closed events"))
		return
	}
	if deactivated > 0 {
		logger.InfoCtx(ctx, "Deactivated closed events", zap.Int64("count", deactivated))
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *eventSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping event sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Event sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Event sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}
