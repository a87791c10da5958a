package notify

import (
	"context"
	"fmt"
)

// Sender is the message-delivery capability. A variant either delivers the
// message or reports the fault; it never swallows one.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError reports a delivery fault on a specific channel. It is
// propagated unchanged through the dispatch layer; retry policy belongs to
// the caller or the variant, never to the dispatcher.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
