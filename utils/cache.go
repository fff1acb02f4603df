// File: utils/cache.go
package utils

import (
	"classadmin/config"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ListCacheClient is the Redis client backing the session list-view cache.
var ListCacheClient *redis.Client

// InitListCache initializes the Redis client for session list caching.
func InitListCache() {
	ListCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisListCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ListCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (List Cache): %v", err)
	}
}

// GetListCacheClient returns the session list cache client.
func GetListCacheClient() *redis.Client {
	if ListCacheClient == nil {
		InitListCache()
	}
	return ListCacheClient
}
