// internal/store/repository.go
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Repository owns the in-memory state of the shop and writes whole collections back to a
// DocumentStore after each committed mutation. Concurrent writers are serialized; there is no
// versioning, so the last committed write of a collection wins.
type Repository struct {
	mu    sync.RWMutex
	state *State
	store DocumentStore
}

func NewRepository(store DocumentStore) *Repository {
	return &Repository{state: NewState(), store: store}
}

// Load replaces the in-memory state with what the store holds.
func (r *Repository) Load(ctx context.Context) error {
	loaded := NewState()
	for _, c := range AllCollections {
		data, err := r.store.Get(ctx, c)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if err := loaded.decode(c, data); err != nil {
			return fmt.Errorf("failed to decode collection %s: %w", c, err)
		}
	}

	r.mu.Lock()
	r.state = loaded
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"catalogs": len(loaded.Catalogs),
		"products": len(loaded.Products),
		"clients":  len(loaded.Clients),
		"orders":   len(loaded.Orders),
		"payments": len(loaded.Payments),
	}).Info("Shop state loaded")
	return nil
}

// Snapshot returns a deep copy the caller may keep.
func (r *Repository) Snapshot() *State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

// Read runs fn against the live state under a read lock. fn must not retain or modify it.
func (r *Repository) Read(fn func(s *State) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.state)
}

// Update runs fn on a working copy in which only the named collections are copied, so fn may
// modify those and must only read the rest. When fn fails nothing changes. Otherwise the copy
// becomes the live state and the named collections are written out; a write failure is reported
// as ErrPersistence and the in-memory state is kept as committed.
func (r *Repository) Update(ctx context.Context, fn func(s *State) error, collections ...Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.state.CloneCollections(collections...)
	if err := fn(working); err != nil {
		return err
	}
	r.state = working

	if len(collections) == 0 {
		return nil
	}

	docs := make(map[Collection][]byte, len(collections))
	for _, c := range collections {
		data, err := working.encode(c)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		docs[c] = data
	}

	if err := r.store.SetMany(ctx, docs); err != nil {
		logrus.WithError(err).WithField("collections", collections).Error("Failed to persist collections")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Ping probes the backing store.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
