package menu

import (
	"context"
	"encoding/json"
	"sync"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs: make(map[string][]byte),
	}
}

// Documents are kept encoded so callers never share maps with the store.
func (r *InMemoryRepository) Get(ctx context.Context, key string) (*Document, error) {
	r.mu.RLock()
	data, ok := r.docs[key]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *InMemoryRepository) Put(ctx context.Context, key string, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.docs[key] = data
	r.mu.Unlock()

	return nil
}
