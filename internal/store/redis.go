// internal/store/redis.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection under "<prefix>:<collection>".
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Key(collection Collection) string {
	return fmt.Sprintf("%s:%s", s.prefix, collection)
}

func (s *RedisStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.Key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, collection Collection, data []byte) error {
	if err := s.rdb.Set(ctx, s.Key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) SetMany(ctx context.Context, docs map[Collection][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for collection, data := range docs {
			pipe.Set(ctx, s.Key(collection), data, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write collections: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
