// File: tidify/utils/cache.go
package utils

import (
	"context"
	"time"

	"tidify/config"

	"github.com/go-redis/redis/v8"
)

var authCacheClient *redis.Client

// InitAuthCache connects the Redis client used to cache session token
// hashes. The cache is an accelerator only: when Redis is unreachable the
// server still runs, with every auth check falling through to the
// datastore, so a failed ping logs a warning instead of aborting startup.
func InitAuthCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Sugar().Warn("REDIS_ADDR not set; auth cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("Auth cache unavailable, continuing without it: %v", err)
		_ = client.Close()
		return
	}

	authCacheClient = client
	GetLogger().Sugar().Infof("Auth cache connected (db %d)", config.AppConfig.RedisAuthDB)
}

// GetAuthCacheClient returns the auth cache client, or nil when the cache
// is disabled or unreachable. Callers must treat nil as a cache miss.
func GetAuthCacheClient() *redis.Client {
	return authCacheClient
}

// CacheAuthToken stores a session token hash under the user's key.
func CacheAuthToken(ctx context.Context, username, tokenHash string) {
	client := GetAuthCacheClient()
	if client == nil {
		return
	}
	if err := client.Set(ctx, AuthCachePrefix+username, tokenHash, AuthCacheTTL).Err(); err != nil {
		GetLogger().Sugar().Warnf("Failed to cache auth token for %s: %v", username, err)
	}
}

// DropAuthToken evicts a user's cached session, forcing the next request
// through the datastore.
func DropAuthToken(ctx context.Context, username string) {
	client := GetAuthCacheClient()
	if client == nil {
		return
	}
	if err := client.Del(ctx, AuthCachePrefix+username).Err(); err != nil {
		GetLogger().Sugar().Warnf("Failed to drop cached auth token for %s: %v", username, err)
	}
}
