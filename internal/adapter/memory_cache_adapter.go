package adapter

import (
	"context"
	"sync"
	"time"

	"topic-quiz/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultMemoryCleanupInterval is how often MemoryCache sweeps expired sessions.
const DefaultMemoryCleanupInterval = time.Minute

type memoryEntry struct {
	value string
	hash  map[string]string
}

// MemoryCache is an in-process domain.Cache used when no Redis address is
// configured and by the CLI. A background janitor evicts expired entries.
type MemoryCache struct {
	// mu guards the hash maps stored inside entries.
	mu    sync.Mutex
	store *gocache.Cache
}

// NewMemoryCache creates an empty MemoryCache swept every
// DefaultMemoryCleanupInterval.
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(DefaultMemoryCleanupInterval)
}

// NewMemoryCacheWithCleanup creates an empty MemoryCache whose janitor runs
// every cleanupInterval.
func NewMemoryCacheWithCleanup(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Len reports the number of stored keys, including expired ones the janitor
// has not swept yet.
func (m *MemoryCache) Len() int {
	return m.store.ItemCount()
}

// ttl maps the Redis convention (zero means no expiry) onto go-cache.
func ttl(expiration time.Duration) time.Duration {
	if expiration <= 0 {
		return gocache.NoExpiration
	}
	return expiration
}

func (m *MemoryCache) lookup(key string) (*memoryEntry, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*memoryEntry), true
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok || e.hash != nil {
		return "", domain.ErrCacheMiss
	}
	return e.value, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Set(key, &memoryEntry{value: value}, ttl(expiration))
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Delete(key)
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}

func (m *MemoryCache) HGet(_ context.Context, key, field string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	v, ok := e.hash[field]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *MemoryCache) HGetAll(_ context.Context, key string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok || len(e.hash) == 0 {
		return nil, domain.ErrCacheMiss
	}
	out := make(map[string]string, len(e.hash))
	for k, v := range e.hash {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryCache) HSet(_ context.Context, key string, fieldValues ...string) error {
	if len(fieldValues)%2 != 0 {
		return domain.NewInternalError("hset: odd number of field/value arguments", nil)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		e = &memoryEntry{}
		m.store.Set(key, e, gocache.NoExpiration)
	}
	if e.hash == nil {
		e.hash = make(map[string]string)
	}
	for i := 0; i < len(fieldValues); i += 2 {
		e.hash[fieldValues[i]] = fieldValues[i+1]
	}
	return nil
}

func (m *MemoryCache) HDel(_ context.Context, key string, fields ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return nil
	}
	for _, f := range fields {
		delete(e.hash, f)
	}
	return nil
}

func (m *MemoryCache) Expire(_ context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return nil
	}
	if expiration <= 0 {
		m.store.Delete(key)
		return nil
	}
	m.store.Set(key, e, expiration)
	return nil
}

var _ domain.Cache = (*MemoryCache)(nil)
