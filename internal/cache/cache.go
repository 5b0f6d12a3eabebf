package cache

import (
	"context"
	"fmt"
	"sync"

	"cbf-translator/internal/textutil"

	"github.com/rs/zerolog/log"
)

// Store is the persistent side of the cache.
type Store interface {
	Get(ctx context.Context, hash, src, dst string) (string, error)
	Upsert(ctx context.Context, hash, src, dst, symbol, translated string) error
	List(ctx context.Context, src, dst string) (map[string]string, error)
}

// SymbolCache provides in-memory + persistent caching of symbol translations
// for one source/destination language pair.
type SymbolCache struct {
	store  Store
	src    string
	dst    string
	mu     sync.RWMutex
	memory map[string]string // hash → translated symbol
}

// NewSymbolCache creates a cache for the src→dst pair backed by store.
func NewSymbolCache(store Store, src, dst string) *SymbolCache {
	return &SymbolCache{
		store:  store,
		src:    src,
		dst:    dst,
		memory: make(map[string]string),
	}
}

// Get retrieves a cached translation. Returns empty string and false if not found.
func (c *SymbolCache) Get(ctx context.Context, symbol string) (string, bool) {
	hash := textutil.Hash(symbol)

	c.mu.RLock()
	if v, ok := c.memory[hash]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	translated, err := c.store.Get(ctx, hash, c.src, c.dst)
	if err != nil {
		return "", false
	}

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	return translated, true
}

// Set stores a translation in memory and in the store.
func (c *SymbolCache) Set(ctx context.Context, symbol, translated string) error {
	hash := textutil.Hash(symbol)

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	if err := c.store.Upsert(ctx, hash, c.src, c.dst, symbol, translated); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Preload loads all cached translations for the language pair into memory.
func (c *SymbolCache) Preload(ctx context.Context) error {
	rows, err := c.store.List(ctx, c.src, c.dst)
	if err != nil {
		return fmt.Errorf("preload cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for hash, translated := range rows {
		c.memory[hash] = translated
	}

	log.Info().Int("count", len(rows)).Str("src", c.src).Str("dst", c.dst).Msg("Preloaded symbol cache")
	return nil
}
