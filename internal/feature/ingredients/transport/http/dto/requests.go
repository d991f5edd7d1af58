// Package dto defines data transfer objects for the ingredients feature's
// HTTP transport layer.
package dto

import "recipe_backend/internal/feature/ingredients/domain/entity"

// IngredientReq is the request body for creating or updating an ingredient.
type IngredientReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// IngredientData is the single-resource response payload.
type IngredientData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// IngredientFromEntity maps an ingredient entity to its response shape.
func IngredientFromEntity(ing *entity.Ingredient) IngredientData {
	return IngredientData{
		ID:          ing.ID,
		Name:        ing.Name,
		Description: ing.Description,
		Category:    ing.Category,
	}
}

// ListItem is one element of the collection response. It keeps the store's
// `_id` key and carries a direct link to the resource.
type ListItem struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

// ListFromEntities maps a page of ingredients to collection items.
func ListFromEntities(items []entity.Ingredient) []ListItem {
	out := make([]ListItem, 0, len(items))
	for _, ing := range items {
		out = append(out, ListItem{
			ID:          ing.ID,
			Name:        ing.Name,
			Description: ing.Description,
			Category:    ing.Category,
			Link:        "/ingredients/" + ing.ID,
		})
	}
	return out
}
