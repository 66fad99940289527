package docstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps the whole store in process memory. It intentionally
// favors clarity over performance and is the default for tests and local
// development.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Fields
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Fields)}
}

func (s *MemoryStore) SetDoc(_ context.Context, collection, id string, fields Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coll(collection)[id] = cloneFields(fields)
	return nil
}

func (s *MemoryStore) CreateDoc(_ context.Context, collection string, fields Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.coll(collection)[id] = cloneFields(fields)
	return id, nil
}

func (s *MemoryStore) GetDoc(_ context.Context, collection, id string) (Fields, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if fields, ok := s.collections[collection][id]; ok {
		return cloneFields(fields), nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateDoc(_ context.Context, collection, id string, partial Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range cloneFields(partial) {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) DeleteDoc(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) QueryMembership(_ context.Context, collection string, ids []string) ([]Doc, error) {
	if len(ids) > MaxBatch {
		return nil, ErrBatchTooLarge
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Doc
	for _, id := range ids {
		if fields, ok := s.collections[collection][id]; ok {
			docs = append(docs, Doc{ID: id, Fields: cloneFields(fields)})
		}
	}
	return docs, nil
}

// coll must be called with the write lock held.
func (s *MemoryStore) coll(collection string) map[string]Fields {
	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string]Fields)
		s.collections[collection] = c
	}
	return c
}

// cloneFields deep-copies the value shapes encoding/json produces, so callers
// never share mutable state with the store.
func cloneFields(fields Fields) Fields {
	if fields == nil {
		return nil
	}
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Fields:
		return cloneFields(val)
	case map[string]any:
		return map[string]any(cloneFields(val))
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
