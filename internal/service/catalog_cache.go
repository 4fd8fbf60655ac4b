package service

import (
	"context"
	"encoding/json"
	"time"

	"dailyfood/internal/cache"
	"dailyfood/internal/model"
)

const catalogCacheKey = "food_catalog:all"

// CatalogCache holds the full food catalog for a short time. Writers call
// Invalidate after every mutation; concurrent writers are last-writer-wins.
type CatalogCache struct {
	store cache.Store
	ttl   time.Duration
}

// NewCatalogCache creates a catalog cache on top of store.
func NewCatalogCache(store cache.Store, ttl time.Duration) *CatalogCache {
	return &CatalogCache{store: store, ttl: ttl}
}

// Get returns the cached catalog, if any.
func (c *CatalogCache) Get(ctx context.Context) ([]model.FoodCatalogEntry, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	data, _ := c.store.Get(ctx, catalogCacheKey)
	if data == nil {
		return nil, false
	}
	var entries []model.FoodCatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Set caches entries.
func (c *CatalogCache) Set(ctx context.Context, entries []model.FoodCatalogEntry) {
	if c == nil || c.store == nil {
		return
	}
	if payload, err := json.Marshal(entries); err == nil {
		_ = c.store.Set(ctx, catalogCacheKey, payload, c.ttl)
	}
}

// Invalidate drops the cached catalog.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, catalogCacheKey)
}
