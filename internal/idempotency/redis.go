package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "checkout:idempotency:"

// RedisStore shares idempotency keys between service replicas.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, key string) (*models.Confirmation, error) {
	body, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var c models.Confirmation
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decode confirmation: %w", err)
	}
	return &c, nil
}

func (r *RedisStore) SaveIfAbsent(ctx context.Context, key string, c *models.Confirmation) (*models.Confirmation, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode confirmation: %w", err)
	}

	// A key that expires between SETNX and GET is claimed again.
	for attempt := 0; attempt < 3; attempt++ {
		ok, err := r.client.SetNX(ctx, keyPrefix+key, body, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis setnx: %w", err)
		}
		if ok {
			return c, nil
		}

		existing, err := r.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("redis setnx: key %q kept expiring", key)
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
