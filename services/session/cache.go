// File: services/session/cache.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classadmin/models"

	"github.com/go-redis/redis/v8"
)

const listCacheKeyPrefix = "sessions:"

// List-view cache keys invalidated after every successful delete.
var listCacheKeys = []string{
	models.SessionStatusLive,
	models.SessionStatusUpcoming,
	models.SessionStatusPast,
	models.SessionStatusDraft,
}

// ListCache holds the dashboard's session list views.
type ListCache interface {
	Get(ctx context.Context, key string) ([]models.Session, bool)
	Set(ctx context.Context, key string, sessions []models.Session)
	InvalidateAll(ctx context.Context)
}

type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListCache(client *redis.Client, ttl time.Duration) ListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

func listKey(key string) string {
	return fmt.Sprintf("%s%s", listCacheKeyPrefix, key)
}

// SearchKey builds the cache key for a search-result list.
func SearchKey(query string) string {
	return "search:" + query
}

func (c *RedisListCache) Get(ctx context.Context, key string) ([]models.Session, bool) {
	val, err := c.client.Get(ctx, listKey(key)).Result()
	if err != nil {
		return nil, false
	}
	var sessions []models.Session
	if err := json.Unmarshal([]byte(val), &sessions); err != nil {
		return nil, false
	}
	return sessions, true
}

func (c *RedisListCache) Set(ctx context.Context, key string, sessions []models.Session) {
	data, err := json.Marshal(sessions)
	if err != nil {
		return
	}
	c.client.Set(ctx, listKey(key), data, c.ttl)
}

// InvalidateAll drops the status-bucket keys plus every cached search result.
func (c *RedisListCache) InvalidateAll(ctx context.Context) {
	for _, key := range listCacheKeys {
		c.client.Del(ctx, listKey(key))
	}
	keys, err := c.client.Keys(ctx, listKey(SearchKey("*"))).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
