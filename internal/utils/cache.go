package utils

import (
	"context"       // Context for Redis operations
	"crypto/sha256" // Hashing for cache keys
	"encoding/hex"
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// ProviderCacheKey builds a stable Redis key for a provider response from
// the request's full query string. Hashed so arbitrary user-supplied
// filters cannot produce oversized or malformed keys.
func ProviderCacheKey(kind, query string) string {
	sum := sha256.Sum256([]byte(query))
	return "spoonacular:" + kind + ":" + hex.EncodeToString(sum[:16])
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}
