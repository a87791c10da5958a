// Package pubsub provides a generic in-process publish/subscribe broker.
// It serves as the event-bus delivery channel for notifications and as the
// fan-out path for live log entries.
package pubsub

import (
	"errors"
	"time"
)

// ErrClosed is returned by Publish after the broker has been closed.
var ErrClosed = errors.New("broker is closed")

// EventType labels the kind of event being published.
type EventType string

const (
	// DeliveredEvent carries a notification message delivered via the bus.
	DeliveredEvent EventType = "delivered"

	// LogLineEvent carries a formatted log entry.
	LogLineEvent EventType = "logline"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
