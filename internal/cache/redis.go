package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobagg/internal/models"
)

const redisKeyPrefix = "jobagg:search:"

// Redis is the shared cache backend for serve mode, letting several
// instances absorb each other's repeated queries.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis parses redisURL, verifies connectivity, and returns the
// backend. Serve mode fails fast on an unreachable Redis rather than
// silently running uncached.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration, log zerolog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl, log: log}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (*models.SearchResponse, bool) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug().Err(err).Msg("cache get failed")
		}
		return nil, false
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		r.log.Debug().Err(err).Msg("cache entry corrupt, dropping")
		r.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}
	return &resp, true
}

func (r *Redis) Set(ctx context.Context, key string, resp *models.SearchResponse) {
	if resp == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		r.log.Debug().Err(err).Msg("cache set failed")
	}
}
