// Package usecase implements the business logic for the ingredients feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/ingredients/domain"
	"recipe_backend/internal/feature/ingredients/domain/entity"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	// DefaultSort and DefaultSortType are the list ordering used when the
	// request does not specify one.
	DefaultSort     = "updatedAt"
	DefaultSortType = "dsc"
)

// ListQuery describes a page of the ingredient collection.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Sort     string
	SortType string
}

// Normalize clamps the query to sane bounds and fills in defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	if q.SortType != "asc" {
		q.SortType = DefaultSortType
	}
	return q
}

// IngredientRepository abstracts the persistence layer for ingredients.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type IngredientRepository interface {
	Create(ctx context.Context, ing *entity.Ingredient) error
	FindByID(ctx context.Context, id string) (*entity.Ingredient, error)
	Update(ctx context.Context, ing *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
	// List returns one page of ingredients plus the total match count.
	List(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, error)
}

// ingredientsUsecase implements ingredient CRUD and listing.
type ingredientsUsecase struct {
	ingredients IngredientRepository
}

// NewIngredientsUsecase creates a new ingredientsUsecase.
func NewIngredientsUsecase(ingredients IngredientRepository) *ingredientsUsecase {
	return &ingredientsUsecase{ingredients: ingredients}
}

func validateIngredient(name string) map[string]string {
	if name == "" {
		return map[string]string{"name": "Name is required"}
	}
	return nil
}

// Create validates and persists a new ingredient.
func (u *ingredientsUsecase) Create(ctx context.Context, name, description, category string) (*entity.Ingredient, error) {
	if fields := validateIngredient(name); fields != nil {
		return nil, apperr.NewValidation(fields)
	}

	ing := entity.NewIngredient(name, description, category)
	if err := u.ingredients.Create(ctx, ing); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ing, nil
}

// Get retrieves a single ingredient by ID.
func (u *ingredientsUsecase) Get(ctx context.Context, id string) (*entity.Ingredient, error) {
	ing, err := u.ingredients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "Ingredient not found", err)
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}
	return ing, nil
}

// List returns a page of ingredients and the total match count. The returned
// query is the normalized form actually executed.
func (u *ingredientsUsecase) List(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, ListQuery, error) {
	q = q.Normalize()
	items, total, err := u.ingredients.List(ctx, q)
	if err != nil {
		return nil, 0, q, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return items, total, q, nil
}

// Update replaces an ingredient's fields. Existence is checked before field
// validation, so a missing ingredient is NotFound even for an empty body.
func (u *ingredientsUsecase) Update(ctx context.Context, id, name, description, category string) (*entity.Ingredient, error) {
	ing, err := u.ingredients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "Ingredient not found", err)
		}
		return nil, fmt.Errorf("failed to load ingredient: %w", err)
	}

	if fields := validateIngredient(name); fields != nil {
		return nil, apperr.NewValidation(fields)
	}

	ing.Name = name
	ing.Description = description
	ing.Category = category
	if err := u.ingredients.Update(ctx, ing); err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}
	return ing, nil
}

// Delete removes an ingredient by ID.
func (u *ingredientsUsecase) Delete(ctx context.Context, id string) error {
	if err := u.ingredients.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return apperr.Wrap(apperr.NotFound, "Requested Ingredient not found", err)
		}
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}
