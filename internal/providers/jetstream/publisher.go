package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// PublishMaxElapsed bounds the retries of a single publish
	PublishMaxElapsed time.Duration
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	json       adapter.JSON
	clock      adapter.Clock
	maxElapsed time.Duration
}

func connectOptions(cfg Config) []nats.Option {
	return []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

// EnsureStream creates or updates the stream holding run notifications
func EnsureStream(ctx context.Context, js adapter.JetStream, streamName string) error {
	err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"runs.>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update stream: %w", err)
	}
	return nil
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, clock adapter.Clock) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := EnsureStream(ctx, js, cfg.StreamName); err != nil {
		nc.Close()
		return nil, err
	}

	maxElapsed := cfg.PublishMaxElapsed
	if maxElapsed <= 0 {
		maxElapsed = 5 * time.Second
	}

	return &publisher{
		nc:         nc,
		js:         js,
		json:       jsonAdapter,
		clock:      clock,
		maxElapsed: maxElapsed,
	}, nil
}

// PublishRunVerified publishes a verified-run notification, retrying with exponential backoff
func (p *publisher) PublishRunVerified(ctx context.Context, event *domain.RunVerifiedEvent) error {
	if event.EventID == "" {
		event.EventID = ulid.MustNewDefault(p.clock.Now()).String()
	}

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = p.maxElapsed

	operation := func() error {
		_, err := p.js.Publish(ctx, messaging.SubjectRunVerified, data, jetstream.WithMsgID(event.EventID))
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Publish failed, retrying",
			zap.Error(err),
			zap.String("run_id", event.RunID),
			zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugCtx(ctx, "Published run verified event",
		zap.String("event_id", event.EventID),
		zap.String("run_id", event.RunID))

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
