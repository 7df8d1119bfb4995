package service

import "context"

// EventPublisher publishes entity lifecycle events to the message broker.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}
