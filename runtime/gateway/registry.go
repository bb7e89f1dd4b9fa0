package gateway

import (
	"context"
	"sync"
)

// Handler processes one Message and returns the packed response payload.
// A Handler typically decodes the request payload with a type's generated
// NewXxxFromReader constructor, does the work, and calls the result's Pack.
type Handler func(ctx context.Context, msg Message) ([]byte, error)

// Registry maps an endpoint name to the Handler that serves it.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register binds endpoint to h, replacing any handler previously bound to
// the same endpoint.
func (r *Registry) Register(endpoint string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[endpoint] = h
}

// Lookup returns the handler bound to endpoint, if any.
func (r *Registry) Lookup(endpoint string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[endpoint]
	return h, ok
}

// Endpoints returns the set of currently registered endpoint names.
func (r *Registry) Endpoints() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	return out
}
