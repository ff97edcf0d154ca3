// Package memcache is the in-process domain.Cache used when Redis is not
// configured. Entries expire after their TTL; a janitor evicts them.
package memcache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"smart_travel/internal/adapters/observability"
)

type Cache struct{ c *gocache.Cache }

func New(defaultTTL, cleanup time.Duration) *Cache {
	return &Cache{c: gocache.New(defaultTTL, cleanup)}
}

// Values are stored as JSON so callers never share memory with the cache.
func (m *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(v.([]byte), dst)
}

func (m *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ttl := gocache.DefaultExpiration
	if ttlSec > 0 {
		ttl = time.Duration(ttlSec) * time.Second
	}
	observability.ObserveCache("memory", "set")
	m.c.Set(key, b, ttl)
	return nil
}

func (m *Cache) Del(_ context.Context, key string) error {
	observability.ObserveCache("memory", "del")
	m.c.Delete(key)
	return nil
}

func (m *Cache) Len() int { return m.c.ItemCount() }
