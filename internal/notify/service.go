package notify

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/switchboard/internal/dispatch"
	"github.com/zjrosen/switchboard/internal/log"
)

// Service is the high-level notification coordinator. It depends only on
// the Sender contract: swapping email for SMS is a rebind, never a code
// change here.
type Service struct {
	sender *dispatch.Dispatcher[Sender]
	tracer trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithTracer attaches an OpenTelemetry tracer. Without it the service
// traces through a no-op tracer at zero overhead.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewService creates a coordinator bound to an initial sender. The sender
// is constructed by the caller; the service never instantiates a concrete
// channel itself.
func NewService(initial Sender, opts ...Option) (*Service, error) {
	d, err := dispatch.New(initial)
	if err != nil {
		return nil, err
	}

	s := &Service{
		sender: d,
		tracer: noop.NewTracerProvider().Tracer("notify"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Use rebinds the delivery channel. Deliveries already in flight finish on
// the channel they started with.
func (s *Service) Use(sender Sender) error {
	if err := s.sender.Rebind(sender); err != nil {
		return err
	}
	log.Info(log.CatNotify, "delivery channel changed")
	return nil
}

// Notify forwards the message to the bound sender and returns its error
// unchanged. No retry, no masking: a delivery fault surfaces to the caller.
func (s *Service) Notify(ctx context.Context, msg Message) error {
	ctx, span := s.tracer.Start(ctx, "notify.send",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	span.SetAttributes(
		attribute.String("message.id", msg.ID.String()),
		attribute.String("message.recipient", msg.Recipient),
	)

	err := s.sender.Do(func(snd Sender) error {
		return snd.Send(ctx, msg)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatNotify, "delivery failed", err, "id", msg.ID)
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
