package search

import (
	"container/list"
	"sync"
)

// Cache is an LRU cache of ranked results keyed by query. It is safe for
// concurrent use. Entries are deep-copied in both directions so callers
// can never mutate cached state.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key     string
	results []Result
}

// NewCache creates an LRU cache holding at most maxSize queries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &Cache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get returns the cached results for key, or nil on a miss.
func (c *Cache) Get(key string) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.order.MoveToFront(elem)
	return copyResults(elem.Value.(*cacheEntry).results)
}

// Set stores results under key, evicting the least recently used entry
// when the cache is full.
func (c *Cache) Set(key string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).results = copyResults(results)
		return
	}

	if c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{
		key:     key,
		results: copyResults(results),
	})
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func copyResults(results []Result) []Result {
	copied := make([]Result, len(results))
	for i, r := range results {
		copied[i] = Result{Index: r.Index, Text: r.Text, Score: r.Score}
		if r.Positions != nil {
			copied[i].Positions = make([]int, len(r.Positions))
			copy(copied[i].Positions, r.Positions)
		}
	}
	return copied
}
