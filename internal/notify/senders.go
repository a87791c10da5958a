package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/zjrosen/switchboard/internal/log"
	"github.com/zjrosen/switchboard/internal/pubsub"
)

// EmailSender delivers messages as wire-formatted email lines to an injected
// transport writer. The coordinator hands it a constructed writer; the
// sender never opens connections itself.
type EmailSender struct {
	out  io.Writer
	from string
}

// NewEmailSender creates an email sender writing to the given transport.
func NewEmailSender(out io.Writer, from string) *EmailSender {
	return &EmailSender{out: out, from: from}
}

// Send writes the message in email wire format. A transport fault is
// reported as a DeliveryError.
func (s *EmailSender) Send(ctx context.Context, msg Message) error {
	_, err := fmt.Fprintf(s.out, "EMAIL id=%s from=%s to=%s subject=%q\n%s\n",
		msg.ID, s.from, msg.Recipient, msg.Subject, msg.Body)
	if err != nil {
		return &DeliveryError{Channel: "email", Err: err}
	}
	log.Debug(log.CatNotify, "email delivered", "id", msg.ID, "to", msg.Recipient)
	return nil
}

// SMSSender delivers messages as SMS lines to an injected transport writer.
type SMSSender struct {
	out io.Writer
}

// NewSMSSender creates an SMS sender writing to the given transport.
func NewSMSSender(out io.Writer) *SMSSender {
	return &SMSSender{out: out}
}

// Send writes the message in SMS wire format. The subject is folded into
// the text since SMS has no subject line.
func (s *SMSSender) Send(ctx context.Context, msg Message) error {
	_, err := fmt.Fprintf(s.out, "SMS id=%s to=%s text=%q\n",
		msg.ID, msg.Recipient, msg.Subject+": "+msg.Body)
	if err != nil {
		return &DeliveryError{Channel: "sms", Err: err}
	}
	log.Debug(log.CatNotify, "sms delivered", "id", msg.ID, "to", msg.Recipient)
	return nil
}

// BusSender publishes messages onto the in-process event bus. Subscribers
// on the bus receive the message as a DeliveredEvent.
type BusSender struct {
	bus *pubsub.Broker[Message]
}

// NewBusSender creates a sender publishing to the given broker.
func NewBusSender(bus *pubsub.Broker[Message]) *BusSender {
	return &BusSender{bus: bus}
}

// Send publishes the message. A closed bus is a delivery fault.
func (s *BusSender) Send(ctx context.Context, msg Message) error {
	if err := s.bus.Publish(pubsub.DeliveredEvent, msg); err != nil {
		return &DeliveryError{Channel: "bus", Err: err}
	}
	log.Debug(log.CatNotify, "bus delivered", "id", msg.ID, "to", msg.Recipient)
	return nil
}
