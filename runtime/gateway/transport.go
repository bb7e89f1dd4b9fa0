package gateway

import "context"

// Transport moves Messages to and from whatever carries them on the
// wire (an in-process channel in tests, a socket or queue in production).
// It is the gateway's analog of runtime/a2a's Caller: a small seam the
// Dispatcher depends on so the dispatch loop itself never knows how bytes
// actually move.
type Transport interface {
	// Send delivers msg to its destination.
	Send(ctx context.Context, msg Message) error
	// Recv blocks until the next inbound Message is available.
	Recv(ctx context.Context) (Message, error)
}

// ChannelTransport is an in-process Transport backed by a pair of
// buffered channels, useful for tests and for wiring a gateway directly
// to an in-process caller without a real network hop.
type ChannelTransport struct {
	inbound  chan Message
	outbound chan Message
}

// NewChannelTransport returns a ChannelTransport with the given buffer
// depth for both directions.
func NewChannelTransport(buffer int) *ChannelTransport {
	return &ChannelTransport{
		inbound:  make(chan Message, buffer),
		outbound: make(chan Message, buffer),
	}
}

// Send enqueues msg on the outbound channel, or returns ctx.Err() if ctx
// is done first.
func (t *ChannelTransport) Send(ctx context.Context, msg Message) error {
	select {
	case t.outbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv dequeues the next Message delivered to this transport's inbound
// side, or returns ctx.Err() if ctx is done first.
func (t *ChannelTransport) Recv(ctx context.Context) (Message, error) {
	select {
	case msg := <-t.inbound:
		return msg, nil
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

// Deliver injects msg as though it had arrived over the wire, letting a
// test or an in-process caller feed the Dispatcher directly.
func (t *ChannelTransport) Deliver(ctx context.Context, msg Message) error {
	select {
	case t.inbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Outbound exposes the channel Send writes to, so a test or an
// in-process caller can read back the Dispatcher's replies.
func (t *ChannelTransport) Outbound() <-chan Message {
	return t.outbound
}
