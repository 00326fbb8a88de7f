package server

import (
	"context"
	"sync"
	"time"

	"github.com/rafiki270/XCUIDebug/internal/host"
)

// DumpCache wraps a Source with a TTL cache of the fetched dump text. MCP
// clients tend to issue tree and path calls back to back; caching avoids
// re-fetching an unchanged hierarchy from the host. A ttl of 0 disables
// caching. DumpCache implements host.Source.
type DumpCache struct {
	src host.Source
	ttl time.Duration

	mu      sync.Mutex
	dump    string
	valid   bool
	fetched time.Time
}

// NewDumpCache wraps src with a TTL cache.
func NewDumpCache(src host.Source, ttl time.Duration) *DumpCache {
	return &DumpCache{src: src, ttl: ttl}
}

// FetchDump returns the cached dump if within TTL, otherwise fetches fresh.
func (c *DumpCache) FetchDump(ctx context.Context) (string, error) {
	if c.ttl == 0 {
		return c.src.FetchDump(ctx)
	}

	c.mu.Lock()
	if c.valid && time.Since(c.fetched) < c.ttl {
		dump := c.dump
		c.mu.Unlock()
		return dump, nil
	}
	c.mu.Unlock()

	dump, err := c.src.FetchDump(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.dump = dump
	c.valid = true
	c.fetched = time.Now()
	c.mu.Unlock()

	return dump, nil
}

// Invalidate clears the cached dump.
func (c *DumpCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.dump = ""
}
