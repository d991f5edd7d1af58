// Package entity defines the domain entities for the ingredients feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient represents a recipe ingredient.
type Ingredient struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the ingredient name. Required.
	Name string `gorm:"size:255;not null;index"`

	// Description is free-form text about the ingredient.
	Description string `gorm:"size:1024"`

	// Category groups ingredients (e.g. "Vegetable").
	Category string `gorm:"size:255;index"`

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}

// NewIngredient creates an ingredient with a fresh ID.
func NewIngredient(name, description, category string) *Ingredient {
	return &Ingredient{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Category:    category,
	}
}
