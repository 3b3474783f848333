package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	BookingCreated  = "booking.created"
	BookingUpdated  = "booking.updated"
	BookingDeleted  = "booking.deleted"
	UserRegistered  = "user.registered"
	ContactReceived = "contact.received"
)

// Event is the envelope written to the topic
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func NewEvent(eventType string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher delivers domain events. Key groups events of one aggregate on a partition.
type Publisher interface {
	Publish(ctx context.Context, key string, event Event) error
	Close() error
}

// NoopPublisher drops every event, used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
