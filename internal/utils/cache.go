package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest.
// A nil client behaves as a permanent miss.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil // Caching disabled
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if rdb == nil || len(keys) == 0 {
		return nil // Nothing to do
	}
	return rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}

// RevisionKey names the cache entry of prefix built from the given data revision
func RevisionKey(prefix, revision string) string {
	return prefix + ":" + revision
}

// RedisInvalidator drops the entries of a superseded revision whenever account data changes
type RedisInvalidator struct {
	Client   *redis.Client // Redis client, nil disables invalidation
	Prefixes []string      // Key prefixes of data derived from accounts
}

// Invalidate deletes the entries each prefix holds for revision
func (r RedisInvalidator) Invalidate(ctx context.Context, revision string) error {
	keys := make([]string, len(r.Prefixes))
	for i, p := range r.Prefixes {
		keys[i] = RevisionKey(p, revision)
	}
	return DeleteCache(ctx, r.Client, keys...)
}
