package semantic

import "sync"

// embeddingCache is a bounded cache of text embeddings.  When full, the
// oldest half of the entries is dropped in one sweep, which keeps eviction
// cheap for the short-lived texts this pipeline sees.
type embeddingCache struct {
	mu      sync.Mutex
	entries map[string][]float32
	order   []string
	maxSize int

	hits   int64
	misses int64
}

func newEmbeddingCache(maxSize int) *embeddingCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &embeddingCache{
		entries: make(map[string][]float32, maxSize),
		maxSize: maxSize,
	}
}

func (c *embeddingCache) get(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vec, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return vec, ok
}

func (c *embeddingCache) put(key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = vec
		return
	}
	if len(c.entries) >= c.maxSize {
		drop := len(c.order) / 2
		if drop < 1 {
			drop = 1
		}
		for _, k := range c.order[:drop] {
			delete(c.entries, k)
		}
		c.order = append([]string(nil), c.order[drop:]...)
	}
	c.entries[key] = vec
	c.order = append(c.order, key)
}

// Stats reports cache occupancy and hit counters.
type Stats struct {
	Size    int   `json:"cache_size"`
	MaxSize int   `json:"max_size"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

func (c *embeddingCache) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), MaxSize: c.maxSize, Hits: c.hits, Misses: c.misses}
}

func (c *embeddingCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]float32, c.maxSize)
	c.order = nil
	c.hits = 0
	c.misses = 0
}
