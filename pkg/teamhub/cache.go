package teamhub

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// Cache errors.
var (
	ErrCacheKeyNotFound = errors.New("key not found in cache")
	ErrCacheEntryStale  = errors.New("cache entry expired")
)

// CacheEntry holds a cached response body and its ETag validator, keyed by
// the fully resolved request URL. Entries are inserted or overwritten only
// after a 200 response carrying an ETag; lookups never mutate the entry.
type CacheEntry struct {
	// Data is the raw response body as received from the server.
	Data []byte
	// ETag is the opaque validator the server supplied for this body.
	ETag string
	// StoredAt is when the entry was written.
	StoredAt time.Time
	// ExpiresAt bounds the entry lifetime. Zero means no expiry: ETag
	// revalidation makes entries safe to keep for the client's lifetime.
	ExpiresAt time.Time
}

// Expired reports whether the entry's optional TTL has elapsed.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Cache is the storage backend for the conditional (ETag) cache.
// Implementations must be safe for concurrent use. Concurrent writes to the
// same key are last-write-wins; both writers carry valid, recent data for
// that URL, so no coordination beyond per-key atomicity is needed.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheOptions holds options common to all cache backends.
type CacheOptions struct {
	// TTL bounds entry lifetime. Zero disables expiry.
	TTL time.Duration
}

// DefaultCacheOptions returns cache options with no TTL; entries are
// revalidated by ETag rather than aged out.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{}
}

// CacheKey derives the cache key for a resolved request URL and the
// credential used to fetch it. The key includes a hash of the credential so
// different auth contexts never share entries; the URL (including query
// string) keeps distinct query parameters from colliding.
func CacheKey(url, credential string) string {
	credHash := ""
	if credential != "" {
		sum := sha256.Sum256([]byte(credential))
		credHash = hex.EncodeToString(sum[:8])
	}

	sum := sha256.Sum256([]byte(url + ":" + credHash))

	return hex.EncodeToString(sum[:])
}

// MemoryCache is a bounded in-memory cache with LRU eviction. It is the
// default backend and is scoped to one client instance: entries are never
// shared across clients or base URLs.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List
}

type memoryCacheItem struct {
	key   string
	entry *CacheEntry
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a memory cache holding at most maxSize entries.
// A non-positive maxSize means unbounded.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get retrieves an entry, refreshing its LRU position.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheKeyNotFound
	}

	item := elem.Value.(*memoryCacheItem)
	if item.entry.Expired() {
		c.order.Remove(elem)
		delete(c.entries, key)

		return nil, ErrCacheEntryStale
	}

	c.order.MoveToFront(elem)

	return item.entry, nil
}

// Set stores or overwrites an entry, evicting the least recently used entry
// when the capacity bound is reached.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*memoryCacheItem).entry = entry
		c.order.MoveToFront(elem)

		return nil
	}

	if c.maxSize > 0 && c.order.Len() >= c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*memoryCacheItem).key)
		}
	}

	c.entries[key] = c.order.PushFront(&memoryCacheItem{key: key, entry: entry})

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	}

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}

	return !elem.Value.(*memoryCacheItem).entry.Expired()
}

// Len returns the number of stored entries, including any expired entries
// not yet evicted.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
