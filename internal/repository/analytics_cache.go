package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AnalyticsCache 学生分析结果的 Redis 缓存，
// 每个学生维护一个索引集合以便整体失效
type AnalyticsCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{Redis: rdb, TTL: ttl}
}

func analyticsKey(studentID, id string) string {
	return fmt.Sprintf("analytics:result:%s:%s", studentID, id)
}

func analyticsIndexKey(studentID string) string {
	return fmt.Sprintf("analytics:index:%s", studentID)
}

// Get 命中时反序列化到 dest 并返回 true
func (c *AnalyticsCache) Get(ctx context.Context, studentID, id string, dest interface{}) (bool, error) {
	val, err := c.Redis.Get(ctx, analyticsKey(studentID, id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, studentID, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	key := analyticsKey(studentID, id)
	indexKey := analyticsIndexKey(studentID)

	pipe := c.Redis.TxPipeline()
	pipe.Set(ctx, key, data, c.TTL)
	pipe.SAdd(ctx, indexKey, key)
	pipe.Expire(ctx, indexKey, c.TTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, studentID string) error {
	indexKey := analyticsIndexKey(studentID)
	keys, err := c.Redis.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	keys = append(keys, indexKey)
	return c.Redis.Del(ctx, keys...).Err()
}
