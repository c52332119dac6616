package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedResult struct {
	Scope          string  `json:"scope"`
	OverallAverage float64 `json:"overall_average"`
}

func newTestCache(t *testing.T) (*AnalyticsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewAnalyticsCache(rdb, time.Minute), mr
}

func TestAnalyticsCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got cachedResult
	hit, err := cache.Get(context.Background(), "s@uni.edu", "5", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAnalyticsCacheSetGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "s@uni.edu", "5", cachedResult{Scope: "category", OverallAverage: 63.3}))

	var got cachedResult
	hit, err := cache.Get(ctx, "s@uni.edu", "5", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cachedResult{Scope: "category", OverallAverage: 63.3}, got)

	assert.Equal(t, time.Minute, mr.TTL(analyticsKey("s@uni.edu", "5")))

	mr.FastForward(2 * time.Minute)
	hit, err = cache.Get(ctx, "s@uni.edu", "5", &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry expires after TTL")
}

func TestAnalyticsCacheInvalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a@uni.edu", "5", cachedResult{Scope: "category"}))
	require.NoError(t, cache.Set(ctx, "a@uni.edu", "7", cachedResult{Scope: "presentation"}))
	require.NoError(t, cache.Set(ctx, "b@uni.edu", "5", cachedResult{Scope: "category"}))

	require.NoError(t, cache.Invalidate(ctx, "a@uni.edu"))

	assert.False(t, mr.Exists(analyticsKey("a@uni.edu", "5")))
	assert.False(t, mr.Exists(analyticsKey("a@uni.edu", "7")))
	assert.False(t, mr.Exists(analyticsIndexKey("a@uni.edu")))
	assert.True(t, mr.Exists(analyticsKey("b@uni.edu", "5")), "other students untouched")

	// 未缓存过的学生失效也不报错
	assert.NoError(t, cache.Invalidate(ctx, "nobody@uni.edu"))
}
