package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/planner"
)

// fakeRedis implements the three commands the cache uses; anything else panics
// through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisCandidateCache(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	cache := NewRedisCandidateCache(fake, 15*time.Minute)

	_, ok, err := cache.Get(ctx, "Sapa")
	require.NoError(t, err)
	assert.False(t, ok)

	points := []planner.PointOfInterest{{
		ID:           "fansipan",
		Name:         "Fansipan",
		Category:     planner.CategoryAdventure,
		Location:     planner.Coordinate{Lat: 22.3033, Lng: 103.7750},
		VisitMinutes: 240,
	}}
	require.NoError(t, cache.Set(ctx, "Sapa", points))
	assert.Equal(t, 15*time.Minute, fake.ttl["candidates:sapa"])

	got, ok, err := cache.Get(ctx, "SAPA")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, points, got)

	require.NoError(t, cache.Invalidate(ctx, "sapa"))
	_, ok, _ = cache.Get(ctx, "Sapa")
	assert.False(t, ok)
}

func TestRedisCandidateCache_corruptEntry(t *testing.T) {
	fake := newFakeRedis()
	fake.data["candidates:hue"] = "{not json"
	cache := NewRedisCandidateCache(fake, time.Minute)

	_, ok, err := cache.Get(context.Background(), "Hue")
	assert.Error(t, err)
	assert.False(t, ok)
}
