package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) Get(ctx context.Context, token string) (*Entry, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(v, &e); err != nil {
		// Unparseable entry counts as a miss; the mutation will simply be
		// re-evaluated against the state machine.
		return nil, nil
	}
	return &e, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, e *Entry, ttl time.Duration) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+token, payload, ttl).Err()
}
