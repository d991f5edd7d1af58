// Package di selects repository implementations based on which backends are
// available at startup.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"recipe_backend/internal/feature/ingredients/adapters"
	"recipe_backend/internal/feature/ingredients/usecase"
	"recipe_backend/internal/platform/cache"
)

// NewIngredientRepository creates the ingredient repository. When Redis is
// available the GORM repository is wrapped with the caching decorator;
// otherwise the store is used directly.
func NewIngredientRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.IngredientRepository {
	repo := adapters.NewIngredientGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingIngredientRepository(rdb, ttl, repo, "ingredients")
}
