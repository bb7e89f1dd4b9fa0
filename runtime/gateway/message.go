// Package gateway is the runtime counterpart to the generated Pack/Unpack
// methods: a minimal message envelope and dispatch loop that moves packed
// payloads between an endpoint name and the handler registered for it,
// the way runtime/a2a moves SendTaskRequest/SendTaskResponse between a
// skill name and its Caller.
package gateway

import (
	"fmt"

	"github.com/google/uuid"
)

// Message is the wire envelope a Transport exchanges: an endpoint name
// routing it to a Handler, a correlation id pairing a request with its
// response, and the packed payload itself (produced by a type's generated
// Pack method, consumed by its generated NewXxxFromReader constructor or
// Unpack method).
type Message struct {
	// Endpoint names the handler that should process this message.
	Endpoint string
	// CorrelationID pairs a request with the response it produced.
	CorrelationID uuid.UUID
	// Payload is the packed body, opaque to the gateway itself.
	Payload []byte
}

// NewRequest builds a Message with a freshly generated correlation id.
func NewRequest(endpoint string, payload []byte) Message {
	return Message{Endpoint: endpoint, CorrelationID: uuid.New(), Payload: payload}
}

// Reply builds the response Message carrying the same correlation id as
// req, so the caller can match it back to the request that produced it.
func (req Message) Reply(payload []byte) Message {
	return Message{Endpoint: req.Endpoint, CorrelationID: req.CorrelationID, Payload: payload}
}

// UnknownEndpointError is returned when a Message names an endpoint with
// no registered Handler.
type UnknownEndpointError struct {
	Endpoint string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("gateway: no handler registered for endpoint %q", e.Endpoint)
}
