package event

import "time"

// Lifecycle event types published to the broker
const (
	TaskCreated = "task.created"
	TaskUpdated = "task.updated"
	TaskDeleted = "task.deleted"
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// Event is the payload published for entity lifecycle changes
type Event struct {
	Type       string    `json:"type"`
	EntityID   int       `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds an event stamped with the current time
func New(eventType string, entityID int) Event {
	return Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
