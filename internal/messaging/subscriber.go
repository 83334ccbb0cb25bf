package messaging

import (
	"context"

	"github.com/runera/runera-backend/internal/domain"
)

// RunVerifiedHandler is called for each verified-run notification.
// A nil error acknowledges the message; any other error requests redelivery.
type RunVerifiedHandler func(ctx context.Context, event *domain.RunVerifiedEvent) error

// Subscriber defines the interface for consuming run notifications
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeRunVerified blocks, delivering notifications to handler until ctx is done
	SubscribeRunVerified(ctx context.Context, handler RunVerifiedHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
