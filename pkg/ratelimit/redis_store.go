package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a Redis sorted set per key, with the entry
// score holding the admission timestamp. Suitable when producers span
// multiple processes and need to share one admission window.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the Redis key prefix. Default is "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisTimeSource overrides the wall clock. Intended for tests.
func WithRedisTimeSource(now func() time.Time) RedisStoreOption {
	return func(s *RedisStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRedisStore creates a Redis-backed ledger store.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}

	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Record prunes expired sorted-set entries for key, then records one
// admission when capacity remains. Denied calls leave the ledger untouched.
func (s *RedisStore) Record(ctx context.Context, key string, config Config) (int, time.Time, error) {
	now := s.now()
	redisKey := s.prefix + key
	cutoff := now.Add(-config.Window).UnixMilli()

	if err := s.client.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	count, err := s.client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	if count >= int64(config.Limit) {
		resetAt, err := s.oldestEntryReset(ctx, redisKey, config.Window, now)
		if err != nil {
			return 0, time.Time{}, err
		}
		return -1, resetAt, nil
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	})
	// The whole ledger is garbage once no entry can still be inside the window.
	pipe.Expire(ctx, redisKey, config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	resetAt, err := s.oldestEntryReset(ctx, redisKey, config.Window, now)
	if err != nil {
		return 0, time.Time{}, err
	}

	return config.Limit - int(count) - 1, resetAt, nil
}

// Reset removes the ledger for the given key.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) oldestEntryReset(ctx context.Context, redisKey string, window time.Duration, now time.Time) (time.Time, error) {
	oldest, err := s.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
	if err != nil {
		return time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(oldest) == 0 {
		return now.Add(window), nil
	}
	return time.UnixMilli(int64(oldest[0].Score)).Add(window), nil
}
