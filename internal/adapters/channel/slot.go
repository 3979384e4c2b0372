package channel

import (
	"context"
	"sync"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// Slot is a Registrar for in-process transports (REST, WebSocket, GraphQL)
// that look up the current handler on every message.
type Slot struct {
	name string

	mu sync.RWMutex
	h  Handler
}

// NewSlot returns an empty slot for the named transport.
func NewSlot(name string) *Slot {
	return &Slot{name: name}
}

func (s *Slot) Name() string { return s.name }

func (s *Slot) Register(h Handler) error {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
	return nil
}

func (s *Slot) Unregister() error {
	s.mu.Lock()
	s.h = nil
	s.mu.Unlock()
	return nil
}

// Handle forwards to the registered handler, or fails with
// domain.ErrNotAttached.
func (s *Slot) Handle(ctx context.Context, req messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error) {
	s.mu.RLock()
	h := s.h
	s.mu.RUnlock()
	if h == nil {
		return nil, domain.ErrNotAttached
	}
	return h(ctx, req)
}

// Serve is Handle wrapped in a Reply envelope.
func (s *Slot) Serve(ctx context.Context, id string, req messages.FindAutocompletePredictionsRequest) messages.Reply {
	return Serve(ctx, s.name, s.Handle, id, req)
}
