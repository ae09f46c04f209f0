package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsPublisher publishes inventory events to a JetStream stream.
type NatsPublisher struct {
	js jetstream.JetStream
}

// NewNatsPublisher makes sure the stream capturing every inventory subject exists.
func NewNatsPublisher(js jetstream.JetStream, stream string, timeout time.Duration) (*NatsPublisher, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     stream,
		Subjects: []string{messaging.SubjectPrefix + ">"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream %s: %w", stream, err)
	}
	return &NatsPublisher{js: js}, nil
}

// Publish sends event on its subject. Deduplicated events are published with a message id.
func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	var opts []jetstream.PublishOpt
	if d, ok := event.(messaging.Deduplicated); ok {
		opts = append(opts, jetstream.WithMsgID(d.MessageID()))
	}
	if _, err = p.js.Publish(ctx, event.Subject(), data, opts...); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Subject(), err)
	}
	return nil
}
