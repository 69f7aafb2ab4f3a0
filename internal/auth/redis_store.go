package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps records as JSON strings under "<prefix>:<key>"; callers
// give each record kind its own prefix.
// Keys carry a TTL of the remaining lifetime plus grace, so redis does the
// sweeping and expiry is still decided by the provider.
type RedisStore[T Expirable] struct {
	client redis.UniversalClient
	prefix string
	grace  time.Duration
	clock  Clock
}

func NewRedisStore[T Expirable](client redis.UniversalClient, prefix string, clock Clock) *RedisStore[T] {
	if clock == nil {
		clock = RealClock()
	}
	return &RedisStore[T]{client: client, prefix: prefix, grace: time.Minute, clock: clock}
}

func (s *RedisStore[T]) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore[T]) Put(ctx context.Context, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	ttl := value.Expiry().Sub(s.clock.Now())
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.key(key), payload, ttl+s.grace).Err()
}

func (s *RedisStore[T]) Get(ctx context.Context, key string) (T, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	return s.decode(raw, err)
}

func (s *RedisStore[T]) Take(ctx context.Context, key string) (T, error) {
	raw, err := s.client.GetDel(ctx, s.key(key)).Bytes()
	return s.decode(raw, err)
}

func (s *RedisStore[T]) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Sweep is a no-op; redis expires keys on its own.
func (s *RedisStore[T]) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (s *RedisStore[T]) decode(raw []byte, err error) (T, error) {
	var value T
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, ErrNotFound
		}
		return value, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("failed to decode record: %w", err)
	}
	return value, nil
}
