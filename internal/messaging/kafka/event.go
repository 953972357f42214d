package kafka

import "context"

// Event is one message ready for the broker. Payload is already encoded.
type Event struct {
	Topic     string
	Key       string
	EventType string
	RequestID string
	Payload   []byte
}

//go:generate mockgen -source=event.go -destination=mock/event_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher dipakai bila KAFKA_BROKER tidak diset.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
