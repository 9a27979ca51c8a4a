package memcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripplanner/internal/planner"
)

const redisKeyPrefix = "candidates:"

// RedisCandidateCache shares candidate lists between service replicas.
type RedisCandidateCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCandidateCache(client redis.Cmdable, ttl time.Duration) *RedisCandidateCache {
	return &RedisCandidateCache{client: client, ttl: ttl}
}

func RedisKey(destination string) string {
	return redisKeyPrefix + NormalizeKey(destination)
}

func (r *RedisCandidateCache) Get(ctx context.Context, destination string) ([]planner.PointOfInterest, bool, error) {
	raw, err := r.client.Get(ctx, RedisKey(destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var points []planner.PointOfInterest
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, false, fmt.Errorf("decode cached candidates: %w", err)
	}
	return points, true, nil
}

func (r *RedisCandidateCache) Set(ctx context.Context, destination string, points []planner.PointOfInterest) error {
	raw, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	if err := r.client.Set(ctx, RedisKey(destination), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisCandidateCache) Invalidate(ctx context.Context, destination string) error {
	if err := r.client.Del(ctx, RedisKey(destination)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
