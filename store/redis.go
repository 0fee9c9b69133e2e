package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists session slots in Redis under
// {prefix}:{namespace}:{key}. The namespace isolates independent sessions
// sharing one Redis, so a host can run several gateways in-process.
type RedisStore struct {
	client    *redis.Client
	prefix    string
	namespace string
}

// NewRedis creates a RedisStore. An empty prefix defaults to "sg"; the
// namespace may be empty for single-session hosts.
func NewRedis(client *redis.Client, prefix, namespace string) *RedisStore {
	if prefix == "" {
		prefix = "sg"
	}
	return &RedisStore{
		client:    client,
		prefix:    prefix,
		namespace: namespace,
	}
}

func (s *RedisStore) key(k string) string {
	if s.namespace == "" {
		return s.prefix + ":" + k
	}
	return s.prefix + ":" + s.namespace + ":" + k
}

// Get reads one slot. A missing key reports ok=false with a nil error.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errors.Join(ErrUnavailable, err)
	}
	return value, true, nil
}

// Set writes one slot without expiry; identity state lives until an
// explicit teardown.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Delete removes the given slots in one DEL call, which Redis applies
// atomically.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}
