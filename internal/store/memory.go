// internal/store/memory.go
package store

import (
	"context"
	"sync"
)

// MemoryStore keeps snapshots in process. FailWrites makes every write fail, for exercising
// persistence error paths.
type MemoryStore struct {
	mu         sync.RWMutex
	docs       map[Collection][]byte
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[Collection][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[collection]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Set(ctx context.Context, collection Collection, data []byte) error {
	return m.SetMany(ctx, map[Collection][]byte{collection: data})
}

func (m *MemoryStore) SetMany(ctx context.Context, docs map[Collection][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	for collection, data := range docs {
		m.docs[collection] = append([]byte(nil), data...)
	}
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStore) Close() error {
	return nil
}
