package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okravchuk/matoblik/internal/domain"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a per-token TTL. SET/GET/DEL on a
// single key are atomic, which is all the concurrency control sessions need.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, token string, identityID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+token, uint64(identityID), ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (uint, error) {
	value, err := s.rdb.Get(ctx, keyPrefix+token).Uint64()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.NotFoundError{Resource: "session"}
		}
		return 0, err
	}
	return uint(value), nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
