package gateway

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"goa.design/clue/log"
)

var tracer = otel.Tracer("github.com/genpack/genpack/runtime/gateway")

// Dispatcher runs the receive/handle/reply loop: pull a Message off a
// Transport, look up its endpoint in a Registry, run the Handler, and
// send the reply back over the same Transport. Every dispatch is logged
// through goa.design/clue/log and traced through OpenTelemetry, mirroring
// how runtime/registry's Observability wraps its own operations.
type Dispatcher struct {
	Registry  *Registry
	Transport Transport
}

// NewDispatcher returns a Dispatcher wired to reg and t.
func NewDispatcher(reg *Registry, t Transport) *Dispatcher {
	return &Dispatcher{Registry: reg, Transport: t}
}

// Serve runs the dispatch loop until ctx is done or the Transport returns
// a non-context error.
func (d *Dispatcher) Serve(ctx context.Context) error {
	for {
		msg, err := d.Transport.Recv(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		d.dispatchOne(ctx, msg)
	}
}

// dispatchOne handles a single received Message. Errors (unknown endpoint,
// handler failure, failed reply send) are logged and recorded on the span;
// no error reply is sent back over the Transport. Serve's loop keeps
// running regardless.
func (d *Dispatcher) dispatchOne(ctx context.Context, msg Message) {
	ctx, span := tracer.Start(ctx, "gateway.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("gateway.endpoint", msg.Endpoint),
			attribute.String("gateway.correlation_id", msg.CorrelationID.String()),
		))
	defer span.End()

	handler, ok := d.Registry.Lookup(msg.Endpoint)
	if !ok {
		err := &UnknownEndpointError{Endpoint: msg.Endpoint}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, err, log.KV{K: "endpoint", V: msg.Endpoint})
		return
	}

	reply, err := handler(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, err, log.KV{K: "endpoint", V: msg.Endpoint})
		return
	}

	span.SetStatus(codes.Ok, "")
	if sendErr := d.Transport.Send(ctx, msg.Reply(reply)); sendErr != nil {
		log.Error(ctx, sendErr, log.KV{K: "endpoint", V: msg.Endpoint}, log.KV{K: "phase", V: "reply"})
		return
	}
	log.Info(ctx, log.KV{K: "msg", V: "dispatched"}, log.KV{K: "endpoint", V: msg.Endpoint})
}
