// Package adapters provides repository implementations for the ingredients
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/ingredients/domain"
	"recipe_backend/internal/feature/ingredients/domain/entity"
	"recipe_backend/internal/feature/ingredients/usecase"
)

// sortColumns whitelists the sortable API fields and maps them to columns.
var sortColumns = map[string]string{
	"name":      "name",
	"category":  "category",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ingredientGorm is the GORM implementation of the ingredient repository.
type ingredientGorm struct {
	db *gorm.DB
}

var _ usecase.IngredientRepository = (*ingredientGorm)(nil)

// NewIngredientGorm creates an ingredientGorm bound to the given connection.
func NewIngredientGorm(db *gorm.DB) *ingredientGorm {
	return &ingredientGorm{db: db}
}

// Create inserts an ingredient.
func (r *ingredientGorm) Create(ctx context.Context, ing *entity.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

// FindByID retrieves an ingredient by ID.
func (r *ingredientGorm) FindByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// Update saves all fields of an existing ingredient.
func (r *ingredientGorm) Update(ctx context.Context, ing *entity.Ingredient) error {
	result := r.db.WithContext(ctx).Model(&entity.Ingredient{}).Where("id = ?", ing.ID).
		Updates(map[string]any{
			"name":        ing.Name,
			"description": ing.Description,
			"category":    ing.Category,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// Delete removes an ingredient by ID.
func (r *ingredientGorm) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// List returns one page of ingredients matching the query plus the total
// match count. The sort field falls back to updated_at when it is not in the
// whitelist.
func (r *ingredientGorm) List(ctx context.Context, q usecase.ListQuery) ([]entity.Ingredient, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Ingredient{})
	if q.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "updated_at"
	}
	direction := "DESC"
	if q.SortType == "asc" {
		direction = "ASC"
	}

	var items []entity.Ingredient
	if err := tx.Order(column + " " + direction).
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
