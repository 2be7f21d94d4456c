package assetcache

import (
	"os"
	"path/filepath"
	"sync"
)

// Cache keeps small asset files (banner icons) in memory after the first
// read. Single writer, many readers.
type Cache struct {
	dir   string
	mu    sync.RWMutex
	store map[string][]byte
}

func New(dir string) *Cache {
	return &Cache{dir: dir, store: make(map[string][]byte)}
}

// Get returns the asset bytes for name, reading the file once and caching it.
// A miss (unknown or unreadable file) is a normal comma-ok false.
func (c *Cache) Get(name string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.store[name]
	c.mu.RUnlock()
	if ok {
		return data, true
	}

	// asset names must be bare file names, never paths
	if name == "" || filepath.Base(name) != name {
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return nil, false
	}

	c.mu.Lock()
	c.store[name] = data
	c.mu.Unlock()
	return data, true
}

// Put seeds or replaces an asset (tests, pre-warming).
func (c *Cache) Put(name string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[name] = data
}
