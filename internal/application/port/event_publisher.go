package port

import "context"

// EventPublisher defines the interface for publishing domain events
// to an external message broker.
type EventPublisher interface {
	// Publish sends an event payload to the given subject
	Publish(ctx context.Context, subject string, payload interface{}) error

	// Close drains and closes the underlying connection
	Close() error
}
