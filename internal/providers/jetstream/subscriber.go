package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/messaging"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 8
	DEFAULT_WORKER_QUEUE_SIZE = 256
)

// SubscriberConfig holds the configuration for consuming run notifications
type SubscriberConfig struct {
	Config
	ConsumerName    string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
}

type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config SubscriberConfig
}

// NewSubscriber creates a new NATS JetStream subscriber
func NewSubscriber(ctx context.Context, cfg SubscriberConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg.Config)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := EnsureStream(ctx, js, cfg.StreamName); err != nil {
		nc.Close()
		return nil, err
	}

	return &subscriber{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// SubscribeRunVerified consumes verified-run notifications with a durable consumer.
// Messages are handled concurrently on a bounded worker pool.
func (s *subscriber) SubscribeRunVerified(ctx context.Context, handler messaging.RunVerifiedHandler) error {
	logger.InfoCtx(ctx, "Starting run verified subscriber",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName))

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWaitTimeout,
		MaxDeliver:    s.config.MaxDeliver,
		FilterSubject: messaging.SubjectRunVerified,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	workerPoolSize := s.config.WorkerPoolSize
	if workerPoolSize == 0 {
		workerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	workerQueueSize := s.config.WorkerQueueSize
	if workerQueueSize == 0 {
		workerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	pool := pond.NewPool(
		workerPoolSize,
		pond.WithQueueSize(workerQueueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		pool.StopAndWait()
		logger.InfoCtx(ctx, "Run verified worker pool shutdown complete",
			zap.Uint64("total_submitted", pool.SubmittedTasks()),
			zap.Uint64("total_completed", pool.CompletedTasks()),
			zap.Uint64("total_failed", pool.FailedTasks()))
	}()

	msgChan := make(chan adapter.Message, workerQueueSize)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages", zap.Int("workers", workerPoolSize))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down run verified subscriber")
			return ctx.Err()
		case msg := <-msgChan:
			pool.Submit(func() {
				s.handleMessage(ctx, msg, handler)
			})
		}
	}
}

// handleMessage processes a single message: Term on unparseable data, Nak on handler error, Ack otherwise
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.RunVerifiedHandler) {
	var event domain.RunVerifiedEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	ctx = logger.WithFields(ctx,
		zap.String("event_id", event.EventID),
		zap.String("run_id", event.RunID))

	if err := handler(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to handle run verified event"))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}
	s.nc.Close()
}
