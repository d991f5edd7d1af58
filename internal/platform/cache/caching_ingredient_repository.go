// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/feature/ingredients/domain/entity"
	"recipe_backend/internal/feature/ingredients/usecase"
)

// CachingIngredientRepository decorates an IngredientRepository with Redis
// caching for reads. Mutations pass through and invalidate the namespace, so
// a stale page is never served after a write.
type CachingIngredientRepository struct {
	inner     usecase.IngredientRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// cachedPage is the stored form of one List result.
type cachedPage struct {
	Items []entity.Ingredient `json:"items"`
	Total int64               `json:"total"`
}

// NewCachingIngredientRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "ingredients". A nil rdb bypasses the cache entirely.
func NewCachingIngredientRepository(rdb *redis.Client, ttl time.Duration, inner usecase.IngredientRepository, namespace string) *CachingIngredientRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "ingredients"
	}
	return &CachingIngredientRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts through to the store and invalidates cached pages.
func (c *CachingIngredientRepository) Create(ctx context.Context, ing *entity.Ingredient) error {
	if err := c.inner.Create(ctx, ing); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID bypasses the cache; single-row primary key reads are cheap and
// staleness here would be visible immediately after an update.
func (c *CachingIngredientRepository) FindByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	return c.inner.FindByID(ctx, id)
}

// Update writes through to the store and invalidates cached pages.
func (c *CachingIngredientRepository) Update(ctx context.Context, ing *entity.Ingredient) error {
	if err := c.inner.Update(ctx, ing); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes through to the store and invalidates cached pages.
func (c *CachingIngredientRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// List retrieves a page, checking the cache first and falling back to the
// store. Cache writes are best effort.
func (c *CachingIngredientRepository) List(ctx context.Context, q usecase.ListQuery) ([]entity.Ingredient, int64, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, q)
	}

	key := c.listKey(q)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var page cachedPage
		if err := json.Unmarshal(b, &page); err == nil {
			return page.Items, page.Total, nil
		}
		// Drop the corrupted entry and fall through to the store.
		_ = c.rdb.Del(ctx, key).Err()
	}

	items, total, err := c.inner.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if b, err := json.Marshal(cachedPage{Items: items, Total: total}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return items, total, nil
}

// listKey generates the cache key for a specific list query.
func (c *CachingIngredientRepository) listKey(q usecase.ListQuery) string {
	return fmt.Sprintf("%s:list:%d:%d:%s:%s:%s",
		c.namespace, q.Page, q.Limit, safe(q.Sort), safe(q.SortType), safe(q.Search))
}

// invalidate deletes every cached page in the namespace using SCAN.
// Best effort: a failed invalidation only shortens to the TTL.
func (c *CachingIngredientRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	pattern := c.namespace + ":list:*"
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = c.rdb.Del(ctx, keys...).Err()
		}
		cursor = cur
		if cursor == 0 {
			return
		}
	}
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
