// cmd/server/main_test.go
package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/config"
	"github.com/shopledger/backend/internal/store"
)

type closeCountingStore struct {
	*store.MemoryStore
	pingErr error
	closed  int
}

func (s *closeCountingStore) Ping(ctx context.Context) error {
	if s.pingErr != nil {
		return s.pingErr
	}
	return s.MemoryStore.Ping(ctx)
}

func (s *closeCountingStore) Close() error {
	s.closed++
	return s.MemoryStore.Close()
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Store:       config.StoreConfig{Driver: "memory", ProbeTimeout: time.Second},
		Admin:       config.AdminConfig{Username: "admin", Password: "admin-password"},
	}
}

func TestPrepareRepositoryClosesStoreOnFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("unreachable", func(t *testing.T) {
		docs := &closeCountingStore{MemoryStore: store.NewMemoryStore(), pingErr: errors.New("connection refused")}

		repo, err := prepareRepository(ctx, docs, testConfig())
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Equal(t, 1, docs.closed)
	})

	t.Run("corrupt collection", func(t *testing.T) {
		docs := &closeCountingStore{MemoryStore: store.NewMemoryStore()}
		require.NoError(t, docs.Set(ctx, store.Products, []byte("{not json")))

		repo, err := prepareRepository(ctx, docs, testConfig())
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Equal(t, 1, docs.closed)
	})
}

func TestPrepareRepositorySeedsAdmin(t *testing.T) {
	docs := &closeCountingStore{MemoryStore: store.NewMemoryStore()}

	repo, err := prepareRepository(context.Background(), docs, testConfig())
	require.NoError(t, err)
	assert.Zero(t, docs.closed)

	var users int
	require.NoError(t, repo.Read(func(st *store.State) error {
		users = len(st.Users)
		return nil
	}))
	assert.Equal(t, 1, users)
}
