// Package messaging defines the events the inventory emits and the publisher abstraction for them.
package messaging

import (
	"context"
)

const (
	// SubjectPrefix is shared by every inventory subject.
	SubjectPrefix         = "inventory."
	BooksPurchasedSubject = SubjectPrefix + "books.purchased"
	BookAddedSubject      = SubjectPrefix + "books.added"

	// Source names the producer stamped into event payloads.
	Source = "bookstore"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// Deduplicated events carry an id the broker uses to drop redelivered publishes.
type Deduplicated interface {
	MessageID() string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
