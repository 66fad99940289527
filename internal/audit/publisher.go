package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sink accepts audit events. Implementations: MemoryStore, KafkaSink.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher stamps and forwards audit events. It keeps the engine decoupled
// from the concrete sink so tests can swap one in.
type Publisher struct {
	sink Sink
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if p == nil || p.sink == nil {
		return nil
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return p.sink.Append(ctx, event)
}

// MemoryStore is an in-process sink that also supports reads, for tests and
// the memory backend.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// ListByOwner returns the owner's events in append order.
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out
}
