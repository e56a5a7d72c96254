package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

const cartKeyPrefix = "cart:"

// RedisCartsRepository stores cart mirrors as JSON values with a TTL.
// It satisfies CartRepositoryInterface as the alternative backend.
type RedisCartsRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartsRepository wraps an existing Redis client.
func NewRedisCartsRepository(client *redis.Client, ttl time.Duration) *RedisCartsRepository {
	return &RedisCartsRepository{client: client, ttl: ttl}
}

// NewRedisClient connects and pings a Redis server from a URL such as
// redis://localhost:6379/0.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// Save serializes the item list under cart:<sessionID>.
func (r *RedisCartsRepository) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKeyPrefix+sessionID, payload, r.ttl).Err()
}

// Load returns the stored item list. A missing key or an undecodable
// payload both read as absent.
func (r *RedisCartsRepository) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	payload, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Msg("Discarding malformed cart payload")
		return nil, nil
	}
	return items, nil
}

// Delete removes the key. Absence is not an error.
func (r *RedisCartsRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKeyPrefix+sessionID).Err()
}
