package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// flagKey is the single persisted datum of the whole application:
// its presence means a session is active. Orders, transactions and
// drafts are never persisted.
const flagKey = "fastparcel:session"

type Store interface {
	Activate(ctx context.Context) error
	Clear(ctx context.Context) error
	Active(ctx context.Context) (bool, error)
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// NewRedisStoreWithClient wraps an existing client; used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Activate(ctx context.Context) error {
	if err := s.client.Set(ctx, flagKey, "1", 0).Err(); err != nil {
		return fmt.Errorf("failed to persist session flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, flagKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session flag: %w", err)
	}
	return nil
}

func (s *RedisStore) Active(ctx context.Context) (bool, error) {
	n, err := s.client.Exists(ctx, flagKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to read session flag: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
