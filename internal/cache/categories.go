// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// categories.go provides a Valkey-backed cache for the category list.
// The dependent category→subcategory selects re-render on every parent
// change; the options are always derived from one fetched list, never
// re-fetched per interaction, and this cache lets consecutive renders
// share that fetch across requests. Any category mutation invalidates it.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"wikisend/internal/models"
)

const (
	// categoriesKey is the Valkey key holding the serialized category list.
	categoriesKey = "categories"

	// DefaultCategoryTTL is how long the category list stays cached.
	DefaultCategoryTTL = 1 * time.Minute
)

// CategoryCache manages the cached category list in Valkey.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache creates a category cache backed by the given Valkey client.
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl == 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

// Get retrieves the cached category list. Returns false on miss or on a
// payload that no longer unmarshals (stale schema), which is discarded.
func (cc *CategoryCache) Get(ctx context.Context) ([]models.Category, bool) {
	payload, err := cc.client.Get(ctx, categoriesKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("category cache get error", "error", err)
		return nil, false
	}

	var categories []models.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		slog.Warn("category cache payload corrupt, discarding", "error", err)
		cc.client.Del(ctx, categoriesKey)
		return nil, false
	}
	return categories, true
}

// Set stores the category list with the configured TTL.
func (cc *CategoryCache) Set(ctx context.Context, categories []models.Category) {
	payload, err := json.Marshal(categories)
	if err != nil {
		slog.Warn("category cache marshal error", "error", err)
		return
	}
	if err := cc.client.Set(ctx, categoriesKey, payload, cc.ttl).Err(); err != nil {
		slog.Warn("category cache set error", "error", err)
	}
}

// Invalidate removes the cached list. Called after every category or
// subcategory mutation so deleted parents never offer orphaned children.
func (cc *CategoryCache) Invalidate(ctx context.Context) {
	if err := cc.client.Del(ctx, categoriesKey).Err(); err != nil {
		slog.Warn("category cache invalidate error", "error", err)
	}
	slog.Debug("category cache invalidated")
}
