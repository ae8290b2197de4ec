package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss    = errors.New("cache miss")
	errStaleVersion = errors.New("balance version changed")
)

// RedisBalanceCache holds derived wallet balances for read paths only.
type RedisBalanceCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

func NewRedisBalanceCache(client redis.UniversalClient, ttl time.Duration) *RedisBalanceCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisBalanceCache{client: client, baseTTL: ttl}
}

func (r *RedisBalanceCache) Get(ctx context.Context, userID uuid.UUID) (money.Cents, error) {
	raw, err := r.client.Get(ctx, balanceKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, fmt.Errorf("redis get failed: %w", err)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cached balance failed: %w", err)
	}
	return money.Cents(v), nil
}

func (r *RedisBalanceCache) Version(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := r.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get version failed: %w", err)
	}
	return v, nil
}

// SetIfVersion watches the version key so a Delete racing with the write
// aborts it.
func (r *RedisBalanceCache) SetIfVersion(ctx context.Context, userID uuid.UUID, version int64, balance money.Cents) error {
	key, verKey := balanceKey(userID), versionKey(userID)
	jitter := time.Duration(rand.IntN(60)) * time.Second

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, verKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, balance.Int64(), r.baseTTL+jitter)
			return nil
		})
		return err
	}, verKey)

	switch {
	case err == nil, errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("redis set failed: %w", err)
	}
}

func (r *RedisBalanceCache) Delete(ctx context.Context, userID uuid.UUID) error {
	verKey := versionKey(userID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, verKey)
		// must outlive any balance written under an older version
		pipe.Expire(ctx, verKey, 2*r.baseTTL+time.Minute)
		pipe.Del(ctx, balanceKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func balanceKey(userID uuid.UUID) string {
	return "wallet:balance:" + userID.String()
}

func versionKey(userID uuid.UUID) string {
	return "wallet:balance:version:" + userID.String()
}

// NoopBalanceCache always misses. It is used when no Redis address is configured.
type NoopBalanceCache struct{}

func (NoopBalanceCache) Get(context.Context, uuid.UUID) (money.Cents, error) {
	return 0, ErrCacheMiss
}

func (NoopBalanceCache) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (NoopBalanceCache) SetIfVersion(context.Context, uuid.UUID, int64, money.Cents) error {
	return nil
}

func (NoopBalanceCache) Delete(context.Context, uuid.UUID) error { return nil }
