package bridge

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/messaging"
)

// Bridge forwards verified-run notifications to the event participation engine
type Bridge interface {
	// Run consumes notifications until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	subscriber messaging.Subscriber
	engine     events.Engine
}

// NewBridge creates a new participation bridge
func NewBridge(subscriber messaging.Subscriber, engine events.Engine) Bridge {
	return &bridge{
		subscriber: subscriber,
		engine:     engine,
	}
}

// Run starts consuming verified-run notifications
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting participation bridge")

	err := b.subscriber.SubscribeRunVerified(ctx, b.handleRunVerified)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("participation bridge stopped: %w", err)
	}

	logger.InfoCtx(ctx, "Participation bridge stopped")
	return nil
}

// handleRunVerified applies one verified run to the user's open participations.
// An error leads to redelivery, which is safe because completed participations never reopen.
func (b *bridge) handleRunVerified(ctx context.Context, event *domain.RunVerifiedEvent) error {
	if event.UserID == "" || event.RunID == "" {
		logger.WarnCtx(ctx, "Dropping run verified event without identifiers",
			zap.String("event_id", event.EventID))
		return nil
	}

	if err := b.engine.ApplyVerifiedRun(ctx, event); err != nil {
		return fmt.Errorf("failed to apply verified run: %w", err)
	}

	logger.DebugCtx(ctx, "Applied verified run to participations",
		zap.String("run_id", event.RunID),
		zap.String("user_id", event.UserID))
	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	b.subscriber.Close()
}
