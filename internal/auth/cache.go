package auth

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/projecthub/projecthub/internal/db/models"
)

// publicCache remembers whether a permission name is public for a resource kind.
// It is purged after every committed permission mutation. A lookup started before
// a purge carries an older generation and is not stored.
type publicCache struct {
	lru *expirable.LRU[string, bool]

	mu  sync.Mutex
	gen uint64
}

func newPublicCache(size int, ttl time.Duration) *publicCache {
	if size < 0 {
		size = 0
	}

	return &publicCache{lru: expirable.NewLRU[string, bool](size, nil, ttl)}
}

func publicKey(kind models.ResourceKind, name string) string {
	return string(kind) + "/" + name
}

// get returns the cached value and the generation a fresh lookup must pass to add.
func (c *publicCache) get(kind models.ResourceKind, name string) (public, ok bool, gen uint64) {
	c.mu.Lock()
	gen = c.gen
	c.mu.Unlock()

	public, ok = c.lru.Get(publicKey(kind, name))

	return public, ok, gen
}

func (c *publicCache) add(kind models.ResourceKind, name string, public bool, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}

	c.lru.Add(publicKey(kind, name), public)
}

func (c *publicCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.lru.Purge()
}
