package playerjs

import "sync"

// Cache stores fetched player JS bodies keyed by player path.
type Cache interface {
	Get(playerID string) (string, bool)
	Set(playerID string, jsBody string)
}

type memoryCache struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryCache() Cache {
	return &memoryCache{items: make(map[string]string)}
}

func (c *memoryCache) Get(playerID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.items[playerID]
	return body, ok
}

func (c *memoryCache) Set(playerID string, jsBody string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[playerID] = jsBody
}
