package event

import "sync"

// Counter counts events per type. Safe for concurrent use.
type Counter struct {
	mu     sync.RWMutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[t]
}

// Snapshot copies the current counts
func (c *Counter) Snapshot() map[Type]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Type]uint64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
