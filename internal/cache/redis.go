package cache

import (
	"context"
	"sync"
	"time"

	"hrms-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// fallback holds reset codes when Redis is unavailable. Process-local and
// volatile: codes are lost on restart and not shared between instances,
// which is acceptable only as a degraded mode.
var fallback = struct {
	sync.Mutex
	codes map[string]fallbackEntry
}{codes: make(map[string]fallbackEntry)}

type fallbackEntry struct {
	value   string
	expires time.Time
}

// Init initializes the Redis connection
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when degraded)
func GetClient() *redis.Client {
	return client
}

// SetWithTTL stores a value under key with the given TTL, overwriting any
// prior value. Used for reset codes: one outstanding code per subject.
func SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if client == nil {
		fallback.Lock()
		fallback.codes[key] = fallbackEntry{value: value, expires: time.Now().Add(ttl)}
		fallback.Unlock()
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Get returns the stored value and whether it is still present (unexpired).
func Get(ctx context.Context, key string) (string, bool) {
	if client == nil {
		fallback.Lock()
		defer fallback.Unlock()
		entry, ok := fallback.codes[key]
		if !ok {
			return "", false
		}
		if time.Now().After(entry.expires) {
			delete(fallback.codes, key)
			return "", false
		}
		return entry.value, true
	}
	value, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Delete removes a key.
func Delete(ctx context.Context, key string) {
	if client == nil {
		fallback.Lock()
		delete(fallback.codes, key)
		fallback.Unlock()
		return
	}
	client.Del(ctx, key)
}
