// Package cache is a small key/value store used for sessions and query
// caching. Values are JSON-encoded and expire after a TTL.
//
// Redis is the backing store when reachable. When Connect fails (no Redis
// in dev or CI) the package falls back to an in-process map with the same
// semantics, so code using cache.Get/Set never has to care.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/vanik/config"
	"github.com/shashiranjanraj/vanik/pkg/metrics"
)

var RDB *redis.Client
var Ctx = context.Background()

// driver names the active backing store for metrics labels.
func driver() string {
	if RDB == nil {
		return "memory"
	}
	return "redis"
}

// Connect initialises the Redis client and verifies the connection with a
// ping. On error the package keeps serving from the in-memory store, so the
// caller can log a warning and carry on.
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so Get/Set/Del use the memory store
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	hit := lookup(key, dest)
	if hit {
		metrics.CacheHits.WithLabelValues(driver()).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(driver()).Inc()
	}
	return hit
}

func lookup(key string, dest interface{}) bool {
	if RDB == nil {
		return mem.get(key, dest)
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for the given TTL. A zero TTL means no expiry.
func Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if RDB == nil {
		mem.set(key, data, ttl)
		return nil
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Del removes one or more keys.
func Del(keys ...string) error {
	if RDB == nil {
		mem.del(keys...)
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}

// Forget is an alias for Del (Laravel-style).
func Forget(key string) error {
	return Del(key)
}

// Flush removes every key from the store.
func Flush() error {
	if RDB == nil {
		mem.flush()
		return nil
	}
	return RDB.FlushDB(Ctx).Err()
}

// ─── In-memory fallback ───────────────────────────────────────────────────────

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means never
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

var mem = &memoryStore{entries: make(map[string]memoryEntry)}

func init() {
	go mem.sweepLoop()
}

func (s *memoryStore) get(key string, dest interface{}) bool {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.del(key)
		return false
	}

	return json.Unmarshal(entry.data, dest) == nil
}

func (s *memoryStore) set(key string, data []byte, ttl time.Duration) {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
}

func (s *memoryStore) del(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *memoryStore) flush() {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
}

// sweepLoop drops expired entries so a long-running process without Redis
// does not grow without bound.
func (s *memoryStore) sweepLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for key, entry := range s.entries {
			if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}
