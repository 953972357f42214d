package producer

import (
	"context"

	"github.com/riooastfu/pastimobile-be/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher writes events synchronously through a kafka-go writer.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(writer *kafkago.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, event kafka.Event) error {
	return publishEvent(ctx, p.writer, event)
}

func publishEvent(ctx context.Context, writer messageWriter, event kafka.Event) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.Key),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
