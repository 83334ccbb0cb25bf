package messaging

import (
	"context"

	"github.com/runera/runera-backend/internal/domain"
)

// SubjectRunVerified is the subject verified-run notifications are published on
const SubjectRunVerified = "runs.verified"

// Publisher defines the interface for publishing run notifications to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishRunVerified publishes a notification for a committed verified run.
	// event.EventID is assigned when empty and doubles as the broker de-duplication key.
	PublishRunVerified(ctx context.Context, event *domain.RunVerifiedEvent) error
	// Close closes the connection
	Close()
}
